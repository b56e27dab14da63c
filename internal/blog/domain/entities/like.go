package entities

// Like фиксирует отметку "нравится" пользователя на публикации.
// Инвариант: пара (UserID, BlogID) существует не более чем в одном экземпляре;
// наличие записи и есть состояние "нравится".
type Like struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`
	BlogID int64 `json:"blogId"`
}

// LikeAction описывает действие, фактически выполненное переключателем лайка.
type LikeAction string

// Возможные результаты переключения.
const (
	LikeCreated LikeAction = "liked"
	LikeDeleted LikeAction = "unliked"
)

// LikeToggle - результат переключения лайка: какое действие было выполнено
// и какая запись была создана или удалена.
type LikeToggle struct {
	Action LikeAction `json:"action"`
	Like   *Like      `json:"like"`
}
