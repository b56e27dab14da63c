package entities

// Category представляет рубрику, к которой относятся публикации (M:N).
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Lifecycle

	Blogs []*Blog `json:"blogs,omitempty"`
}
