package entities

import "time"

// Blog представляет публикацию пользователя.
type Blog struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  int64     `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Lifecycle

	// Денормализованные связи. Заполняются по требованию.
	Author     *User       `json:"author,omitempty"`
	Categories []*Category `json:"categories,omitempty"`
	Comments   []*Comment  `json:"comments,omitempty"`
	Likes      []*Like     `json:"likes,omitempty"`
}
