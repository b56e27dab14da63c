package entities

import "time"

// Comment представляет комментарий пользователя к публикации.
type Comment struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	AuthorID  int64     `json:"authorId"`
	BlogID    int64     `json:"blogId"`
	CreatedAt time.Time `json:"createdAt"`
	Lifecycle
}
