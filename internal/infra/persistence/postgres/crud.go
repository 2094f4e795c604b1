package postgres

import (
	"context"

	"gorm.io/gorm"
)

// crudRepository is the shared mechanics behind every entity repository: one
// uniform CRUD op set over a single GORM model type. It always runs on the
// *gorm.DB it was constructed with and never begins a transaction of its own.
// The caller decides whether that handle is the pooled connection or a
// unit-of-work transaction.
type crudRepository[M any] struct {
	db *gorm.DB
}

// addOne inserts the model and populates generated fields in place.
// Errors are returned raw; the entity repository maps them onto the domain taxonomy.
func (r *crudRepository[M]) addOne(ctx context.Context, m *M) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// findOne returns at most one match for the given column filter.
// Zero matches surface as gorm.ErrRecordNotFound.
func (r *crudRepository[M]) findOne(ctx context.Context, filter map[string]any) (*M, error) {
	var m M
	if err := r.db.WithContext(ctx).Where(filter).First(&m).Error; err != nil {
		return nil, err
	}

	return &m, nil
}

// findAll returns every match in stable id order. A nil filter matches everything.
func (r *crudRepository[M]) findAll(ctx context.Context, filter map[string]any) ([]*M, error) {
	var ms []*M
	tx := r.db.WithContext(ctx).Order("id ASC")
	if len(filter) > 0 {
		tx = tx.Where(filter)
	}
	if err := tx.Find(&ms).Error; err != nil {
		return nil, err
	}

	return ms, nil
}

// editOne applies a partial update to the row with the given id and reports
// how many rows were affected, so the caller can distinguish not-found.
func (r *crudRepository[M]) editOne(ctx context.Context, id int64, fields map[string]any) (int64, error) {
	var m M
	result := r.db.WithContext(ctx).Model(&m).Where("id = ?", id).Updates(fields)

	return result.RowsAffected, result.Error
}

// deleteOne removes the row with the given id and reports affected rows.
func (r *crudRepository[M]) deleteOne(ctx context.Context, id int64) (int64, error) {
	var m M
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&m)

	return result.RowsAffected, result.Error
}
