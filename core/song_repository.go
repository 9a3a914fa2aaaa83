package core

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrSongNotFound is returned when no song has the requested id.
	ErrSongNotFound = errors.New("song not found")
	// ErrDuplicateSong is returned when (title, artist, album) already exists.
	ErrDuplicateSong = errors.New("song already exists")
)

// SongRecord represents a catalog row in the persistence layer.
// ReleaseYear and Duration are nil when unset.
type SongRecord struct {
	ID          int64
	Title       string
	Artist      string
	Album       string
	ReleaseYear *int
	Genre       string
	Duration    *int
	CreatedAt   time.Time
}

// SongRepository defines persistence operations for the song catalog.
type SongRepository interface {
	List(ctx context.Context) ([]SongRecord, error)
	Get(ctx context.Context, id int64) (*SongRecord, error)
	Create(ctx context.Context, s SongRecord) (*SongRecord, error)
	Update(ctx context.Context, s SongRecord) (*SongRecord, error)
	Delete(ctx context.Context, id int64) error
}

// PgSongRepository implements SongRepository using pgxpool.
type PgSongRepository struct {
	db *pgxpool.Pool
}

func NewPgSongRepository(db *pgxpool.Pool) *PgSongRepository {
	return &PgSongRepository{db: db}
}

func (r *PgSongRepository) List(ctx context.Context) ([]SongRecord, error) {
	const q = `SELECT id, title, artist, album, release_year, genre, duration, created_at
		FROM songs ORDER BY id`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]SongRecord, 0)
	for rows.Next() {
		var s SongRecord
		if err := rows.Scan(&s.ID, &s.Title, &s.Artist, &s.Album, &s.ReleaseYear, &s.Genre, &s.Duration, &s.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func (r *PgSongRepository) Get(ctx context.Context, id int64) (*SongRecord, error) {
	const q = `SELECT id, title, artist, album, release_year, genre, duration, created_at
		FROM songs WHERE id=$1`
	var s SongRecord
	err := r.db.QueryRow(ctx, q, id).Scan(&s.ID, &s.Title, &s.Artist, &s.Album, &s.ReleaseYear, &s.Genre, &s.Duration, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSongNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *PgSongRepository) Create(ctx context.Context, s SongRecord) (*SongRecord, error) {
	const q = `INSERT INTO songs (title, artist, album, release_year, genre, duration)
		VALUES ($1,$2,$3,$4,$5,$6) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, q, s.Title, s.Artist, s.Album, s.ReleaseYear, s.Genre, s.Duration).
		Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSong
		}
		return nil, err
	}
	return &s, nil
}

func (r *PgSongRepository) Update(ctx context.Context, s SongRecord) (*SongRecord, error) {
	const q = `UPDATE songs SET title=$1, artist=$2, album=$3, release_year=$4, genre=$5, duration=$6
		WHERE id=$7 RETURNING created_at`
	err := r.db.QueryRow(ctx, q, s.Title, s.Artist, s.Album, s.ReleaseYear, s.Genre, s.Duration, s.ID).
		Scan(&s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSongNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSong
		}
		return nil, err
	}
	return &s, nil
}

func (r *PgSongRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM songs WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSongNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
