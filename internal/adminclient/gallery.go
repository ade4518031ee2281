package adminclient

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
)

const (
	// MaxBatchFiles caps one upload batch.
	MaxBatchFiles = 10
	// MaxFileSize caps a single uploaded file (5MB).
	MaxFileSize = 5 << 20
)

// ErrOperationInFlight means the gallery already has a mutating
// operation outstanding; wait for it to resolve before the next one.
var ErrOperationInFlight = errors.New("another gallery operation is in flight")

// File is one file selected for upload.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// UploadRejection names a file that failed pre-checks and never
// reached the network.
type UploadRejection struct {
	Name   string
	Reason string
}

// Gallery manages one project's image list. Every mutation refetches
// the authoritative list from the server; the client never flips
// is_main flags locally because their exclusivity lives server-side.
type Gallery struct {
	client    *Client
	projectID int64

	mu     sync.Mutex
	images []Image
	loaded bool

	busy atomic.Bool
}

func NewGallery(client *Client, projectID int64) *Gallery {
	return &Gallery{
		client:    client,
		projectID: projectID,
	}
}

func (g *Gallery) ProjectID() int64 {
	return g.projectID
}

// Load fetches the current image list.
func (g *Gallery) Load() error {
	images, err := g.client.listProjectImages(g.projectID)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.images = images
	g.loaded = true
	return nil
}

func (g *Gallery) Loaded() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loaded
}

// Images returns a copy of the current list.
func (g *Gallery) Images() []Image {
	g.mu.Lock()
	defer g.mu.Unlock()

	images := make([]Image, len(g.images))
	copy(images, g.images)
	return images
}

func (g *Gallery) MainImage() (Image, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, img := range g.images {
		if img.IsMain {
			return img, true
		}
	}
	return Image{}, false
}

// Upload checks each file before any network traffic, submits the
// valid subset in one multipart request and refetches the list. Files
// failing the checks come back as rejections; the rest still go out.
func (g *Gallery) Upload(files []File) ([]UploadRejection, error) {
	if !g.busy.CompareAndSwap(false, true) {
		return nil, ErrOperationInFlight
	}
	defer g.busy.Store(false)

	var accepted []File
	var rejected []UploadRejection

	for _, file := range files {
		if reason := checkUpload(file); reason != "" {
			rejected = append(rejected, UploadRejection{Name: file.Name, Reason: reason})
			continue
		}
		if len(accepted) >= MaxBatchFiles {
			rejected = append(rejected, UploadRejection{
				Name:   file.Name,
				Reason: fmt.Sprintf("batch limit of %d files exceeded", MaxBatchFiles),
			})
			continue
		}
		accepted = append(accepted, file)
	}

	if len(accepted) == 0 {
		return rejected, &Error{Kind: ErrorUploadRejected, Message: "no valid files in batch"}
	}

	if err := g.client.uploadProjectImages(g.projectID, accepted); err != nil {
		return rejected, err
	}

	return rejected, g.Load()
}

// SetMain promotes an image, then refetches so the previous main's
// cleared flag comes from the server.
func (g *Gallery) SetMain(imageID int64) error {
	if !g.busy.CompareAndSwap(false, true) {
		return ErrOperationInFlight
	}
	defer g.busy.Store(false)

	if err := g.client.setMainProjectImage(g.projectID, imageID); err != nil {
		return err
	}

	return g.Load()
}

// Delete removes an image, then refetches. Deleting the main image may
// leave the gallery with no main until the next upload or SetMain.
func (g *Gallery) Delete(imageID int64) error {
	if !g.busy.CompareAndSwap(false, true) {
		return ErrOperationInFlight
	}
	defer g.busy.Store(false)

	if err := g.client.deleteProjectImage(g.projectID, imageID); err != nil {
		return err
	}

	return g.Load()
}

func checkUpload(file File) string {
	if file.Name == "" {
		return "file has no name"
	}
	if !strings.HasPrefix(file.ContentType, "image/") {
		return "not an image file"
	}
	if len(file.Data) > MaxFileSize {
		return "file exceeds the 5MB limit"
	}
	return ""
}
