package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
	"go.uber.org/zap"
)

type IndexingServiceInterface interface {
	IndexDocument(indexName, id string, document interface{}) error
	BulkIndexDocuments(indexName string, documents map[string]interface{}) error
	DeleteDocument(indexName, id string) error
	SearchIndex(indexName string, q query.Query, size int) (*bleve.SearchResult, error)
	GetDocument(indexName, id string) (interface{}, error)
	DeleteAllIndices() error
}

// IndexingService owns the on-disk bleve indexes, one per index name under
// basePath. Indexes are opened lazily and cached for the process lifetime.
// The mutex serializes first-touch opens: bleve holds an exclusive file lock,
// so two goroutines opening the same path would deadlock the loser.
type IndexingService struct {
	mu       sync.Mutex
	indexes  map[string]bleve.Index
	logger   *zap.Logger
	basePath string
}

func NewIndexingService(logger *zap.Logger, basePath string) *IndexingService {
	return &IndexingService{
		indexes:  make(map[string]bleve.Index),
		logger:   logger,
		basePath: basePath,
	}
}

func (s *IndexingService) getOrCreateIndex(indexName string) (bleve.Index, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx, ok := s.indexes[indexName]; ok {
		return idx, nil
	}

	fullPath := fmt.Sprintf("%s/%s.bleve", s.basePath, indexName)
	mapping := bleve.NewIndexMapping()

	idx, err := bleve.Open(fullPath)
	if err != nil {
		idx, err = bleve.New(fullPath, mapping)
		if err != nil {
			return nil, fmt.Errorf("failed to create index %s: %w", fullPath, err)
		}
	}

	s.indexes[indexName] = idx
	return idx, nil
}

// SearchIndex runs a query and requests all stored fields back with each hit.
func (s *IndexingService) SearchIndex(indexName string, q query.Query, size int) (*bleve.SearchResult, error) {
	idx, err := s.getOrCreateIndex(indexName)
	if err != nil {
		s.logger.Error("Could not get or create index", zap.Error(err))
		return nil, err
	}

	searchRequest := bleve.NewSearchRequestOptions(q, size, 0, false)
	searchRequest.Fields = []string{"*"}

	searchResult, err := idx.Search(searchRequest)
	if err != nil {
		s.logger.Error("Search failed", zap.Error(err))
		return nil, err
	}

	return searchResult, nil
}

func (s *IndexingService) IndexDocument(indexName, id string, document interface{}) error {
	idx, err := s.getOrCreateIndex(indexName)
	if err != nil {
		s.logger.Error("Could not get or create index", zap.Error(err))
		return err
	}

	if err := idx.Index(id, document); err != nil {
		s.logger.Error("Failed to index document", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

func (s *IndexingService) BulkIndexDocuments(indexName string, documents map[string]interface{}) error {
	idx, err := s.getOrCreateIndex(indexName)
	if err != nil {
		s.logger.Error("Could not get or create index", zap.Error(err))
		return err
	}

	batch := idx.NewBatch()
	for id, doc := range documents {
		if err := batch.Index(id, doc); err != nil {
			s.logger.Error("Failed to add doc to batch", zap.String("id", id), zap.Error(err))
			return err
		}
	}

	if err := idx.Batch(batch); err != nil {
		s.logger.Error("Failed to execute batch", zap.Error(err))
		return err
	}

	s.logger.Info("Bulk indexed documents", zap.String("index", indexName), zap.Int("count", len(documents)))
	return nil
}

func (s *IndexingService) DeleteDocument(indexName, id string) error {
	idx, err := s.getOrCreateIndex(indexName)
	if err != nil {
		s.logger.Error("Could not get or create index", zap.Error(err))
		return err
	}

	if err := idx.Delete(id); err != nil {
		s.logger.Error("Failed to delete document", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// GetDocument retrieves a document's stored fields by searching its id.
func (s *IndexingService) GetDocument(indexName, id string) (interface{}, error) {
	idx, err := s.getOrCreateIndex(indexName)
	if err != nil {
		return nil, err
	}

	query := bleve.NewDocIDQuery([]string{id})
	searchRequest := bleve.NewSearchRequest(query)
	searchRequest.Size = 1
	searchRequest.Fields = []string{"*"}

	searchResult, err := idx.Search(searchRequest)
	if err != nil {
		return nil, err
	}

	if len(searchResult.Hits) == 0 {
		return nil, fmt.Errorf("document not found")
	}

	return searchResult.Hits[0].Fields, nil
}

// DeleteAllIndices closes every cached index and removes all index files from
// basePath, including orphans left behind by previous runs.
func (s *IndexingService) DeleteAllIndices() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for indexName, idx := range s.indexes {
		if err := idx.Close(); err != nil {
			s.logger.Error("Failed to close index before deletion",
				zap.String("index_name", indexName),
				zap.Error(err))
			return fmt.Errorf("failed to close index: %w", err)
		}
		delete(s.indexes, indexName)
	}

	files, err := filepath.Glob(filepath.Join(s.basePath, "*.bleve"))
	if err != nil {
		return fmt.Errorf("failed to scan index directory: %w", err)
	}

	for _, file := range files {
		if err := os.RemoveAll(file); err != nil {
			return fmt.Errorf("failed to delete index files: %w", err)
		}
		s.logger.Info("Deleted index files",
			zap.String("index_name", strings.TrimSuffix(filepath.Base(file), ".bleve")))
	}

	return nil
}
