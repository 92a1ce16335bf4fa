package file_scanner

import (
	"sort"
	"sync"

	"github.com/ncmink/biebie-cli/file_scanner/models"
)

// ResultCollector accumulates admitted records from concurrent batches.
type ResultCollector struct {
	mutex   sync.Mutex
	records []models.FileRecord
}

// NewResultCollector initializes an empty ResultCollector.
func NewResultCollector() *ResultCollector {
	return &ResultCollector{}
}

// Add appends a batch worth of records under one lock acquisition.
func (c *ResultCollector) Add(records []models.FileRecord) {
	if len(records) == 0 {
		return
	}
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.records = append(c.records, records...)
}

// Inventory returns every collected record ordered by path ascending.
func (c *ResultCollector) Inventory() []models.FileRecord {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	sort.Slice(c.records, func(i, j int) bool {
		return c.records[i].Path < c.records[j].Path
	})
	return c.records
}
