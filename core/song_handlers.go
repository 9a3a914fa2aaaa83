package core

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type songRequest struct {
	Title       string `json:"title" binding:"required"`
	Artist      string `json:"artist" binding:"required"`
	Album       string `json:"album"`
	ReleaseYear *int   `json:"releaseYear" binding:"omitempty,gte=1900,lte=2100"`
	Genre       string `json:"genre" binding:"required"`
	Duration    *int   `json:"duration" binding:"omitempty,gt=0"`
}

type songResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Album       string `json:"album,omitempty"`
	ReleaseYear *int   `json:"releaseYear,omitempty"`
	Genre       string `json:"genre"`
	Duration    *int   `json:"duration,omitempty"`
}

func (r songRequest) record(id int64) SongRecord {
	return SongRecord{
		ID:          id,
		Title:       r.Title,
		Artist:      r.Artist,
		Album:       r.Album,
		ReleaseYear: r.ReleaseYear,
		Genre:       r.Genre,
		Duration:    r.Duration,
	}
}

func toSongResponse(s *SongRecord) songResponse {
	return songResponse{
		ID:          s.ID,
		Title:       s.Title,
		Artist:      s.Artist,
		Album:       s.Album,
		ReleaseYear: s.ReleaseYear,
		Genre:       s.Genre,
		Duration:    s.Duration,
	}
}

// bindSong binds a song body and checks the genre against the supported
// list, reporting the allowed values on mismatch.
func bindSong(c *gin.Context, req *songRequest) bool {
	if !bindJSON(c, req) {
		return false
	}
	if !isSupportedGenre(req.Genre) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":         "Invalid genre value",
			"allowedValues": supportedGenres,
			"invalidValue":  req.Genre,
		})
		return false
	}
	return true
}

func registerSongRoutes(g *gin.RouterGroup, deps Deps) {
	g.POST("", func(c *gin.Context) {
		var req songRequest
		if !bindSong(c, &req) {
			return
		}

		created, err := deps.Songs.Create(c.Request.Context(), req.record(0))
		if err != nil {
			if errors.Is(err, ErrDuplicateSong) {
				respondError(c, http.StatusConflict, "DUPLICATE_SONG", "A song with the same title, artist, and album already exists.")
				return
			}
			respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Unexpected error")
			return
		}
		c.JSON(http.StatusCreated, toSongResponse(created))
	})

	g.GET("", func(c *gin.Context) {
		items, err := deps.Songs.List(c.Request.Context())
		if err != nil {
			respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Unexpected error")
			return
		}
		out := make([]songResponse, 0, len(items))
		for i := range items {
			out = append(out, toSongResponse(&items[i]))
		}
		c.JSON(http.StatusOK, out)
	})

	g.GET("/:id", func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		song, err := deps.Songs.Get(c.Request.Context(), id)
		if err != nil {
			respondSongError(c, id, err)
			return
		}
		c.JSON(http.StatusOK, toSongResponse(song))
	})

	g.PUT("/:id", func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		var req songRequest
		if !bindSong(c, &req) {
			return
		}

		updated, err := deps.Songs.Update(c.Request.Context(), req.record(id))
		if err != nil {
			respondSongError(c, id, err)
			return
		}
		c.JSON(http.StatusOK, toSongResponse(updated))
	})

	g.DELETE("/:id", func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		if err := deps.Songs.Delete(c.Request.Context(), id); err != nil {
			respondSongError(c, id, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}

func respondSongError(c *gin.Context, id int64, err error) {
	switch {
	case errors.Is(err, ErrSongNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("Song not found with id: %d", id))
	case errors.Is(err, ErrDuplicateSong):
		respondError(c, http.StatusConflict, "DUPLICATE_SONG", "A song with the same title, artist, and album already exists.")
	default:
		respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Unexpected error")
	}
}
