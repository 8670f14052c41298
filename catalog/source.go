package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"go-storefront/models"
)

// LoadState reports where the catalog is in its load lifecycle.
type LoadState int

const (
	StateLoading LoadState = iota
	StateLoaded
	StateFailed
)

func (s LoadState) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "loading"
	}
}

// Source supplies the ordered product catalog for a session. Consumers must
// treat a catalog that has not loaded yet as empty, not as an error.
type Source interface {
	Products() []models.Product
	State() LoadState
}

// StaticSource serves a fixed product list, loaded before the server starts.
type StaticSource struct {
	products []models.Product
}

// NewStaticSource creates a source over a pre-defined product list.
func NewStaticSource(products []models.Product) *StaticSource {
	return &StaticSource{products: products}
}

// NewStaticSourceFromFile reads a JSON product list from disk. Malformed
// records are skipped with a warning, same as the remote source.
func NewStaticSourceFromFile(path string, log *logrus.Logger) (*StaticSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open catalog file")
	}
	defer f.Close()

	products, err := decodeProducts(f, log)
	if err != nil {
		return nil, errors.Wrapf(err, "parse catalog file %s", path)
	}
	return &StaticSource{products: products}, nil
}

func (s *StaticSource) Products() []models.Product {
	return s.products
}

func (s *StaticSource) State() LoadState {
	return StateLoaded
}

// RemoteSource fetches the catalog once, at startup, from a fixed URL.
// There is no retry and no re-fetch: on failure the catalog stays empty
// and the server keeps running.
type RemoteSource struct {
	url    string
	client *http.Client
	log    *logrus.Logger

	mu       sync.RWMutex
	products []models.Product
	state    LoadState
}

// NewRemoteSource creates a source that will fetch from the given URL.
// The catalog is empty and in the loading state until Load completes.
func NewRemoteSource(url string, log *logrus.Logger) *RemoteSource {
	return &RemoteSource{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
		log:    log,
		state:  StateLoading,
	}
}

// Load performs the single catalog fetch. Run it once, from its own
// goroutine, when the server starts.
func (s *RemoteSource) Load(ctx context.Context) {
	products, err := s.fetch(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.log.WithError(err).Error("Catalog fetch failed; catalog stays empty")
		s.state = StateFailed
		return
	}
	s.products = products
	s.state = StateLoaded
	s.log.WithField("products", len(products)).Info("Catalog loaded")
}

func (s *RemoteSource) fetch(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build catalog request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch catalog")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("catalog endpoint returned %s", resp.Status)
	}

	products, err := decodeProducts(resp.Body, s.log)
	if err != nil {
		return nil, errors.Wrap(err, "decode catalog")
	}
	return products, nil
}

func (s *RemoteSource) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products
}

func (s *RemoteSource) State() LoadState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// productRecord is the wire shape of one catalog entry. Some catalog
// endpoints use "title"/"image", others "name"/"images"; both are accepted.
type productRecord struct {
	ID     flexString       `json:"id"`
	Name   string           `json:"name"`
	Title  string           `json:"title"`
	Price  *decimal.Decimal `json:"price"`
	Image  string           `json:"image"`
	Images []string         `json:"images"`
}

// flexString accepts a JSON string or number as an identifier.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func decodeProducts(r io.Reader, log *logrus.Logger) ([]models.Product, error) {
	var records []productRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(records))
	for i, rec := range records {
		product, err := rec.toProduct()
		if err != nil {
			// Malformed record: skip it rather than fail the whole catalog.
			log.WithError(err).Warnf("Skipping malformed catalog record %d", i)
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

func (rec productRecord) toProduct() (models.Product, error) {
	name := rec.Name
	if name == "" {
		name = rec.Title
	}
	images := rec.Images
	if len(images) == 0 && rec.Image != "" {
		images = []string{rec.Image}
	}

	switch {
	case rec.ID == "":
		return models.Product{}, fmt.Errorf("missing id")
	case name == "":
		return models.Product{}, fmt.Errorf("missing name")
	case rec.Price == nil:
		return models.Product{}, fmt.Errorf("missing price")
	case rec.Price.IsNegative():
		return models.Product{}, fmt.Errorf("negative price")
	case len(images) == 0:
		return models.Product{}, fmt.Errorf("missing image")
	}

	return models.Product{
		ID:     string(rec.ID),
		Name:   name,
		Price:  *rec.Price,
		Images: images,
	}, nil
}
