package app

// Quad corner positions in normalised device coordinates, two floats per vertex
var QuadPositions = []float32{
	-0.5, -0.5,
	0.5, -0.5,
	0.5, 0.5,
	-0.5, 0.5,
}

// QuadIndices splits the quad into two counter-clockwise triangles
var QuadIndices = []uint32{
	0, 1, 2,
	2, 3, 0,
}

// Components per vertex in QuadPositions
const quadComponents = 2
