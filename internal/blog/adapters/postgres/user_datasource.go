package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"goblognest/internal/blog/domain/apperr"
	"goblognest/internal/blog/domain/entities"
	"goblognest/internal/blog/dto"
	"goblognest/internal/blog/ports/datasources"
	"goblognest/pkg/logger"
)

// Сообщения нарушений бизнес-правил для пользователей.
const (
	MsgUserNotFound     = "User not found"
	MsgUsernameTaken    = "Username is already taken"
	MsgEmailTaken       = "Email is already registered"
	MsgUsernameCooldown = "Username can only be changed every %d days"
)

const (
	errCtxCheckingUniqueness = "checking username and email uniqueness"
	errCtxCreatingUser       = "error creating user"
	errCtxQueryingUser       = "error querying user"
	errCtxListingUsers       = "error listing users"
	errCtxUpdatingUsername   = "error updating username"
	errCtxUpdatingPassword   = "error updating password"
	errCtxDeletingUser       = "error deleting user"
)

const userColumns = "id, username, email, password, username_updated_at, created_at, updated_at"

// UserDatasource реализует datasources.UserDatasource поверх Postgres.
type UserDatasource struct {
	pool         PgxPoolInterface
	cooldownDays int
}

// NewUserDatasource создает новый datasource пользователей. cooldownDays -
// минимальный интервал между сменами имени пользователя.
func NewUserDatasource(pool PgxPoolInterface, cooldownDays int) datasources.UserDatasource {
	return &UserDatasource{pool: pool, cooldownDays: cooldownDays}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.UsernameUpdatedAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create сохраняет нового пользователя, предварительно проверив
// уникальность имени и почты одним запросом среди неудаленных записей.
// При двойном конфликте первым сообщается конфликт имени.
func (d *UserDatasource) Create(ctx context.Context, command *dto.CreateUserDTO) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("datasource", "user"), zap.String("method", "Create"))

	rows, err := d.pool.Query(ctx,
		`SELECT username, email FROM users WHERE (username = $1 OR email = $2) AND deleted_at IS NULL`,
		command.Username, command.Email,
	)
	if err != nil {
		log.Error(ctx, "failed to check uniqueness", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingUniqueness, err)
	}

	var usernameTaken, emailTaken bool
	for rows.Next() {
		var username, email string
		if err := rows.Scan(&username, &email); err != nil {
			rows.Close()
			return nil, fmt.Errorf("%s: %w", errCtxCheckingUniqueness, err)
		}
		if username == command.Username {
			usernameTaken = true
		}
		if email == command.Email {
			emailTaken = true
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCheckingUniqueness, err)
	}

	if usernameTaken {
		log.Debug(ctx, "username already taken", zap.String("username", command.Username))
		return nil, apperr.Conflict(MsgUsernameTaken)
	}
	if emailTaken {
		log.Debug(ctx, "email already registered")
		return nil, apperr.Conflict(MsgEmailTaken)
	}

	user, err := scanUser(d.pool.QueryRow(ctx,
		`INSERT INTO users (username, email, password) VALUES ($1, $2, $3) RETURNING `+userColumns,
		command.Username, command.Email, command.Password,
	))
	if err != nil {
		log.Error(ctx, "failed to create user", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, "user created", zap.Int64("userID", user.ID))
	return user, nil
}

// GetAll возвращает всех неудаленных пользователей.
func (d *UserDatasource) GetAll(ctx context.Context) ([]*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("datasource", "user"), zap.String("method", "GetAll"))

	rows, err := d.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE deleted_at IS NULL ORDER BY id`,
	)
	if err != nil {
		log.Error(ctx, "failed to list users", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingUsers, err)
	}
	defer rows.Close()

	users := make([]*entities.User, 0)
	for rows.Next() {
		var user entities.User
		err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.Password,
			&user.UsernameUpdatedAt, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxListingUsers, err)
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingUsers, err)
	}

	return users, nil
}

// GetByID возвращает пользователя по идентификатору. Мягко удаленный
// пользователь считается отсутствующим.
func (d *UserDatasource) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("datasource", "user"), zap.String("method", "GetByID"))

	user, err := scanUser(d.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1 AND deleted_at IS NULL`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.Int64("id", id))
			return nil, apperr.NotFound(MsgUserNotFound)
		}
		log.Error(ctx, "failed to query user", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxQueryingUser, err)
	}

	return user, nil
}

// FindByEmail возвращает пользователя по нормализованной почте.
func (d *UserDatasource) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("datasource", "user"), zap.String("method", "FindByEmail"))

	user, err := scanUser(d.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1 AND deleted_at IS NULL`,
		email,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found by email")
			return nil, apperr.NotFound(MsgUserNotFound)
		}
		log.Error(ctx, "failed to query user by email", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxQueryingUser, err)
	}

	return user, nil
}

// UpdateUsername меняет имя пользователя с учетом кулдауна. Запрос того же
// имени, что и текущее, идемпотентно возвращает пользователя без записи и
// без сдвига отметки последней смены.
func (d *UserDatasource) UpdateUsername(ctx context.Context, command *dto.UpdateUsernameDTO) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("datasource", "user"), zap.String("method", "UpdateUsername"))

	current, err := d.GetByID(ctx, command.ID)
	if err != nil {
		return nil, err
	}

	if current.Username == command.Username {
		log.Debug(ctx, "username unchanged, skipping write", zap.Int64("userID", current.ID))
		return current, nil
	}

	if current.UsernameUpdatedAt != nil {
		elapsedDays := int(time.Since(*current.UsernameUpdatedAt).Hours() / 24)
		if elapsedDays < d.cooldownDays {
			log.Debug(ctx, "username cooldown not elapsed",
				zap.Int64("userID", current.ID), zap.Int("elapsedDays", elapsedDays))
			return nil, apperr.Forbidden(fmt.Sprintf(MsgUsernameCooldown, d.cooldownDays))
		}
	}

	var taken bool
	err = d.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 AND id <> $2 AND deleted_at IS NULL)`,
		command.Username, command.ID,
	).Scan(&taken)
	if err != nil {
		log.Error(ctx, "failed to check username availability", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingUsername, err)
	}
	if taken {
		log.Debug(ctx, "requested username already taken", zap.String("username", command.Username))
		return nil, apperr.Conflict(MsgUsernameTaken)
	}

	now := time.Now().UTC()
	user, err := scanUser(d.pool.QueryRow(ctx,
		`UPDATE users SET username = $1, username_updated_at = $2, updated_at = $2 WHERE id = $3 RETURNING `+userColumns,
		command.Username, now, command.ID,
	))
	if err != nil {
		log.Error(ctx, "failed to update username", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingUsername, err)
	}

	log.Info(ctx, "username updated", zap.Int64("userID", user.ID))
	return user, nil
}

// UpdatePassword сохраняет новый хэш пароля пользователя.
func (d *UserDatasource) UpdatePassword(ctx context.Context, command *dto.UpdatePasswordDTO) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("datasource", "user"), zap.String("method", "UpdatePassword"))

	user, err := scanUser(d.pool.QueryRow(ctx,
		`UPDATE users SET password = $1, updated_at = $2 WHERE id = $3 AND deleted_at IS NULL RETURNING `+userColumns,
		command.Password, time.Now().UTC(), command.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found for password update", zap.Int64("id", command.ID))
			return nil, apperr.NotFound(MsgUserNotFound)
		}
		log.Error(ctx, "failed to update password", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingPassword, err)
	}

	log.Info(ctx, "password updated", zap.Int64("userID", user.ID))
	return user, nil
}

// DeleteByID мягко удаляет пользователя: строка остается, проставляется
// только отметка удаления.
func (d *UserDatasource) DeleteByID(ctx context.Context, id int64) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("datasource", "user"), zap.String("method", "DeleteByID"))

	user, err := d.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if _, err := d.pool.Exec(ctx,
		`UPDATE users SET deleted_at = $1, updated_at = $1 WHERE id = $2`,
		now, id,
	); err != nil {
		log.Error(ctx, "failed to delete user", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxDeletingUser, err)
	}

	user.MarkDeleted(now)
	log.Info(ctx, "user deleted", zap.Int64("userID", id))
	return user, nil
}
