package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/msomdec/yatube/internal/domain"
)

const postColumns = `p.id, p.text, p.created_at,
	u.id, u.username, u.created_at,
	g.id, g.title, g.slug, g.description, g.created_at`

const postFrom = `FROM posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN post_groups g ON g.id = p.group_id`

// PostRepository implements domain.PostRepository using SQLite.
type PostRepository struct {
	db *sql.DB
}

// NewPostRepository creates a new SQLite-backed PostRepository.
func NewPostRepository(db *DB) *PostRepository {
	return &PostRepository{db: db.SqlDB}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (text, created_at, author_id, group_id) VALUES (?, ?, ?, ?)`,
		post.Text, now, post.Author.ID, post.GroupID(),
	)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	post.ID = id
	post.CreatedAt = now
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+postColumns+` `+postFrom+` WHERE p.id = ?`, id)
	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return p, nil
}

// Update rewrites the text and group of an existing post. Author and
// creation time are never touched.
func (r *PostRepository) Update(ctx context.Context, post *domain.Post) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE posts SET text = ?, group_id = ? WHERE id = ?`,
		post.Text, post.GroupID(), post.ID,
	)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostRepository) List(ctx context.Context, filter domain.PostFilter, limit, offset int) ([]domain.Post, error) {
	where, args := filterClause(filter)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+postColumns+` `+postFrom+where+
			` ORDER BY p.created_at DESC, p.id DESC LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) Count(ctx context.Context, filter domain.PostFilter) (int, error) {
	where, args := filterClause(filter)

	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts p`+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}

func filterClause(filter domain.PostFilter) (string, []any) {
	var conds []string
	var args []any
	if filter.GroupID != nil {
		conds = append(conds, "p.group_id = ?")
		args = append(args, *filter.GroupID)
	}
	if filter.AuthorID != nil {
		conds = append(conds, "p.author_id = ?")
		args = append(args, *filter.AuthorID)
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*domain.Post, error) {
	var (
		p         domain.Post
		groupID   sql.NullInt64
		groupName sql.NullString
		groupSlug sql.NullString
		groupDesc sql.NullString
		groupAt   sql.NullTime
	)
	err := row.Scan(&p.ID, &p.Text, &p.CreatedAt,
		&p.Author.ID, &p.Author.Username, &p.Author.CreatedAt,
		&groupID, &groupName, &groupSlug, &groupDesc, &groupAt)
	if err != nil {
		return nil, err
	}
	if groupID.Valid {
		p.Group = &domain.Group{
			ID:          groupID.Int64,
			Title:       groupName.String,
			Slug:        groupSlug.String,
			Description: groupDesc.String,
			CreatedAt:   groupAt.Time,
		}
	}
	return &p, nil
}
