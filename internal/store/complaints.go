package store

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"

	"claimscore/internal/apperr"
	"claimscore/internal/models"
)

// Complaint writes are the only multi-row mutations in the system. Each one
// runs inside a single transaction; a failure at any step rolls back the
// whole aggregate so partial writes are never observable.

func (s *Store) Complaints(ctx context.Context) ([]models.Complaint, error) {
	var roots []models.Complaint
	if err := s.db.WithContext(ctx).Find(&roots).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, err)
	}
	for i := range roots {
		if err := s.loadItems(ctx, &roots[i]); err != nil {
			return nil, err
		}
	}
	return roots, nil
}

func (s *Store) Complaint(ctx context.Context, id int) (models.Complaint, error) {
	var c models.Complaint
	if err := s.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return c, wrapLookup(err)
	}
	if err := s.loadItems(ctx, &c); err != nil {
		return c, err
	}
	return c, nil
}

func (s *Store) loadItems(ctx context.Context, c *models.Complaint) error {
	var items []models.ComplaintItem
	err := s.db.WithContext(ctx).
		Where("complaint_id = ?", strconv.Itoa(c.ID)).
		Find(&items).Error
	if err != nil {
		return apperr.Wrap(apperr.Internal, err)
	}
	c.Items = items
	return nil
}

// CreateComplaint inserts the root, stamps every item's parent reference
// with the generated id, and inserts the items, all in one transaction. The
// parent reference is a string column, so the integer id is stamped as its
// decimal form. Timestamps are server-assigned here.
func (s *Store) CreateComplaint(ctx context.Context, c *models.Complaint) error {
	now := time.Now()
	c.CreatedAt = now
	c.PageEnteredAt = now
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		parent := strconv.Itoa(c.ID)
		for i := range c.Items {
			c.Items[i].ComplaintID = parent
			if err := tx.Create(&c.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return apperr.Wrap(apperr.Internal, err)
	}
	return nil
}

// UpdateComplaint maps the DTO onto the stored root and saves it. A missing
// root is not-found; a conflict where the row vanished mid-transaction also
// remaps to not-found, anything else re-raises as internal.
func (s *Store) UpdateComplaint(ctx context.Context, id int, d models.ComplaintDTO) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c models.Complaint
		if err := tx.First(&c, "id = ?", id).Error; err != nil {
			return err
		}
		models.ApplyComplaintDTO(d, &c)
		res := tx.Save(&c)
		if res.Error != nil {
			return res.Error
		}
		// a save that touched no rows means the root vanished after the
		// First; surface it as a missing record
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Wrap(apperr.NotFound, err)
	}
	var count int64
	s.db.WithContext(ctx).Model(&models.Complaint{}).Where("id = ?", id).Count(&count)
	if count == 0 {
		return apperr.Wrap(apperr.NotFound, err)
	}
	return apperr.Wrap(apperr.Internal, err)
}

// DeleteComplaint removes the aggregate: existence check inside the
// transaction, items first, then the root.
func (s *Store) DeleteComplaint(ctx context.Context, id int) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c models.Complaint
		if err := tx.First(&c, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("complaint_id = ?", strconv.Itoa(c.ID)).
			Delete(&models.ComplaintItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&c).Error
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Wrap(apperr.NotFound, err)
	}
	return apperr.Wrap(apperr.Internal, err)
}
