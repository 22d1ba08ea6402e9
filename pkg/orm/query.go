// Package orm is a thin chainable layer over GORM.
//
// Repositories read like Laravel's query builder while keeping GORM
// underneath:
//
//	var gems []models.Gemstone
//	err := orm.DB().Model(&models.Gemstone{}).
//	    Where("active = ?", true).
//	    Order("created_at desc").
//	    Get(&gems)
//
// Hot catalog queries go through Cache for a redis read-through, and
// multi-statement writes go through Transaction.
package orm

import (
	"errors"
	"math"
	"time"

	"github.com/shashiranjanraj/kashvi-store/pkg/database"
	"github.com/shashiranjanraj/kashvi-store/pkg/metrics"
	"gorm.io/gorm"
)

// ErrNotFound is returned when First finds no matching row.
var ErrNotFound = gorm.ErrRecordNotFound

// IsNotFound reports whether err means "no such row".
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// Cacher is the read-through cache used by Query.Cache.
// Wired to pkg/cache at boot; nil disables caching.
type Cacher interface {
	Get(key string, dest interface{}) bool
	Set(key string, value interface{}, ttl time.Duration) error
}

// CacheStore is injected by the app kernel (avoids an orm↔cache import cycle).
var CacheStore Cacher

// Pagination describes one page of results.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type Query struct {
	db *gorm.DB
}

// DB starts a query against the application database.
func DB() *Query {
	return &Query{db: database.DB}
}

// Use starts a query against an explicit *gorm.DB — transactions and tests.
func Use(db *gorm.DB) *Query {
	return &Query{db: db}
}

// Gorm exposes the underlying *gorm.DB for the rare raw-SQL aggregation.
func (q *Query) Gorm() *gorm.DB { return q.db }

// ── Chainable builders ───────────────────────────────────────────────────────

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Joins(join string, args ...interface{}) *Query {
	return &Query{db: q.db.Joins(join, args...)}
}

func (q *Query) Select(fields string, args ...interface{}) *Query {
	return &Query{db: q.db.Select(fields, args...)}
}

func (q *Query) Group(name string) *Query {
	return &Query{db: q.db.Group(name)}
}

func (q *Query) Order(value string) *Query {
	return &Query{db: q.db.Order(value)}
}

func (q *Query) Limit(n int) *Query {
	return &Query{db: q.db.Limit(n)}
}

func (q *Query) Offset(n int) *Query {
	return &Query{db: q.db.Offset(n)}
}

func (q *Query) Preload(assoc string, args ...interface{}) *Query {
	return &Query{db: q.db.Preload(assoc, args...)}
}

// Raw starts a raw SQL query; finish with Scan.
func (q *Query) Raw(sql string, args ...interface{}) *Query {
	return &Query{db: q.db.Raw(sql, args...)}
}

// ── Finishers: reads ─────────────────────────────────────────────────────────

func (q *Query) Get(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Find(dest).Error
}

func (q *Query) First(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.First(dest).Error
}

func (q *Query) Scan(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Scan(dest).Error
}

func (q *Query) Count(dest *int64) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Count(dest).Error
}

func (q *Query) Pluck(column string, dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Pluck(column, dest).Error
}

// GetWithPagination fills dest with one page and returns page metadata.
// page and limit are clamped to sane values (limit defaults to 20, max 100).
func (q *Query) GetWithPagination(dest interface{}, page, limit int) (Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	var total int64
	if err := q.db.Count(&total).Error; err != nil {
		return Pagination{}, err
	}

	defer metrics.ObserveDBQuery("select", time.Now())
	err := q.db.Limit(limit).Offset((page - 1) * limit).Find(dest).Error
	if err != nil {
		return Pagination{}, err
	}

	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

// Cache is a read-through: on hit dest is filled from the cache, on miss the
// query runs and the result is stored for ttl. Falls back to a plain Get
// when no cache store is wired.
func (q *Query) Cache(key string, ttl time.Duration, dest interface{}) error {
	if CacheStore != nil && CacheStore.Get(key, dest) {
		return nil
	}

	if err := q.Get(dest); err != nil {
		return err
	}

	if CacheStore != nil {
		_ = CacheStore.Set(key, dest, ttl)
	}
	return nil
}

// ── Finishers: writes ────────────────────────────────────────────────────────

func (q *Query) Create(v interface{}) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return q.db.Create(v).Error
}

func (q *Query) Save(v interface{}) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return q.db.Save(v).Error
}

// Updates applies a partial update from a map or struct; chain Model/Where first.
func (q *Query) Updates(values interface{}) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return q.db.Updates(values).Error
}

// Update sets a single column; chain Model/Where first.
func (q *Query) Update(column string, value interface{}) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return q.db.Update(column, value).Error
}

func (q *Query) Delete(v interface{}) error {
	defer metrics.ObserveDBQuery("delete", time.Now())
	return q.db.Delete(v).Error
}

func (q *Query) Exec(sql string, args ...interface{}) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return q.db.Exec(sql, args...).Error
}

// Transaction runs fn inside a single database transaction. The callback
// receives a Query bound to the transaction; returning an error rolls back.
func (q *Query) Transaction(fn func(tx *Query) error) error {
	return q.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Query{db: tx})
	})
}
