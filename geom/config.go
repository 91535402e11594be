package geom

// Epsilon is the tolerance used by the watertight intersection test's
// determinant/distance rejection and by RandCosHemisphere's near-horizon
// redraw.
const Epsilon float32 = 0.001
