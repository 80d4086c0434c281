package driver

import (
	"github.com/vovakirdan/jet-defender/internal/platform/feed"
	"github.com/vovakirdan/jet-defender/internal/storage"
)

//go:generate go tool mockgen -source=collaborators.go -destination=mocks/mock_collaborators.go -package=mocks

// ScoreStore persists finished runs.
type ScoreStore interface {
	SaveScore(e storage.Entry) (storage.Entry, error)
	HighScore(board string) (int, error)
}

// Sound plays audio cues.
type Sound interface {
	PlayShot()
	PlayExplosion()
	StartMusic()
	StopMusic()
}

// Publisher receives a frame whenever the HUD changes or events happen.
type Publisher interface {
	Publish(f feed.Frame)
}
