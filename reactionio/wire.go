package reactionio

// wireReaction is one line of the archive: a reaction's id, optional
// class, and its ITS graph spelled out as flat vertex/edge lists. This
// mirrors the natural JSON rendering of the Python project's reaction
// dictionaries (`original_source/`), not graph.Graph's internal layout,
// which is unexported and never decoded into directly.
type wireReaction struct {
	ID    string      `json:"id"`
	Class string      `json:"class,omitempty"`
	ITS   wireGraph   `json:"its"`
}

type wireGraph struct {
	Vertices []wireVertex `json:"vertices"`
	Edges    []wireEdge   `json:"edges"`
}

type wireVertex struct {
	ID      string `json:"id"`
	Element string `json:"element,omitempty"`
	Charge  int    `json:"charge,omitempty"`
}

type wireEdge struct {
	ID            string  `json:"id,omitempty"`
	From          string  `json:"from"`
	To            string  `json:"to"`
	OrderPair     bool    `json:"order_pair,omitempty"`
	OrderA        float64 `json:"order_a,omitempty"`
	OrderB        float64 `json:"order_b,omitempty"`
	StandardOrder int     `json:"standard_order,omitempty"`
}
