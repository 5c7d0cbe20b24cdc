package graph

import "errors"

// Sentinel errors for the graph package.
var (
	// ErrEmptyVertexID indicates a Vertex was added with an empty ID.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrDuplicateVertex indicates AddVertex was called with an ID already present.
	ErrDuplicateVertex = errors.New("graph: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrDuplicateEdge indicates AddEdge was called with an edge ID already present.
	ErrDuplicateEdge = errors.New("graph: edge already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")
)
