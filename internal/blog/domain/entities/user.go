package entities

import "time"

// User представляет зарегистрированного пользователя платформы.
// Пароль хранится в виде bcrypt-хэша и никогда не сериализуется.
type User struct {
	ID                int64      `json:"id"`
	Username          string     `json:"username"`
	Email             string     `json:"email"`
	Password          string     `json:"-"`
	UsernameUpdatedAt *time.Time `json:"usernameUpdatedAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	Lifecycle

	// Принадлежащие пользователю коллекции. Заполняются по требованию,
	// по умолчанию пустые.
	Blogs    []*Blog    `json:"blogs,omitempty"`
	Comments []*Comment `json:"comments,omitempty"`
	Likes    []*Like    `json:"likes,omitempty"`
}
