package core

import "context"

// Genres supported by the catalog.
var supportedGenres = []string{
	"POP", "ROCK", "HIPHOP", "JAZZ", "CLASSICAL", "ELECTRONIC", "COUNTRY", "OTHER",
}

func isSupportedGenre(genre string) bool {
	for _, g := range supportedGenres {
		if g == genre {
			return true
		}
	}
	return false
}

// SongService provides catalog CRUD over a SongRepository with an optional
// redis cache-aside layer. A nil cache disables caching.
type SongService struct {
	repo  SongRepository
	cache *SongCache
}

func NewSongService(repo SongRepository, cache *SongCache) *SongService {
	return &SongService{repo: repo, cache: cache}
}

func (s *SongService) List(ctx context.Context) ([]SongRecord, error) {
	if s.cache != nil {
		if items, ok := s.cache.GetList(ctx); ok {
			return items, nil
		}
	}
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetList(ctx, items)
	}
	return items, nil
}

func (s *SongService) Get(ctx context.Context, id int64) (*SongRecord, error) {
	if s.cache != nil {
		if cached, ok := s.cache.GetSong(ctx, id); ok {
			return cached, nil
		}
	}
	song, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetSong(ctx, song)
	}
	return song, nil
}

func (s *SongService) Create(ctx context.Context, song SongRecord) (*SongRecord, error) {
	created, err := s.repo.Create(ctx, song)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, created.ID)
	}
	return created, nil
}

func (s *SongService) Update(ctx context.Context, song SongRecord) (*SongRecord, error) {
	updated, err := s.repo.Update(ctx, song)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, updated.ID)
	}
	return updated, nil
}

func (s *SongService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	return nil
}
