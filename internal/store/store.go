// Package store is the persistence layer. Read queries live here; complaint
// writes go through the transactional methods in complaints.go. Every method
// returns apperr-kinded errors so handlers only translate, never inspect
// gorm errors.
package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"claimscore/internal/apperr"
	"claimscore/internal/models"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store { return &Store{db: db} }

// DB exposes the handle for startup tasks (migrate, seed).
func (s *Store) DB() *gorm.DB { return s.db }

func wrapLookup(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Wrap(apperr.NotFound, err)
	}
	return apperr.Wrap(apperr.Internal, err)
}

// FindCredential matches user and password by exact, case-sensitive equality
// against the logins table. The backing store keeps passwords in plain text;
// the comparison is intentionally unhashed (see Credential). Credential
// columns never appear in returned errors.
func (s *Store) FindCredential(ctx context.Context, user, password string) (models.Credential, error) {
	var c models.Credential
	if user == "" || password == "" {
		return c, apperr.New(apperr.InvalidInput, "user and password required")
	}
	err := s.db.WithContext(ctx).Where(`"user" = ? AND password = ?`, user, password).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c, apperr.Wrap(apperr.Unauthorized, err)
	}
	if err != nil {
		return c, apperr.Wrap(apperr.Internal, err)
	}
	return c, nil
}

func (s *Store) Technicians(ctx context.Context) ([]models.Technician, error) {
	var rows []models.Technician
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, err)
	}
	return rows, nil
}

func (s *Store) Technician(ctx context.Context, id string) (models.Technician, error) {
	var row models.Technician
	if err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return row, wrapLookup(err)
	}
	return row, nil
}

func (s *Store) TechnicianTypes(ctx context.Context) ([]models.TechnicianType, error) {
	var rows []models.TechnicianType
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, err)
	}
	return rows, nil
}

func (s *Store) TechnicianType(ctx context.Context, id string) (models.TechnicianType, error) {
	var row models.TechnicianType
	if err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return row, wrapLookup(err)
	}
	return row, nil
}

func (s *Store) ProductTypes(ctx context.Context) ([]models.ProductType, error) {
	var rows []models.ProductType
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, err)
	}
	return rows, nil
}

func (s *Store) ProductType(ctx context.Context, id string) (models.ProductType, error) {
	var row models.ProductType
	if err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return row, wrapLookup(err)
	}
	return row, nil
}

func (s *Store) Provinces(ctx context.Context) ([]models.Province, error) {
	var rows []models.Province
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, err)
	}
	return rows, nil
}

func (s *Store) Province(ctx context.Context, id string) (models.Province, error) {
	var row models.Province
	if err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return row, wrapLookup(err)
	}
	return row, nil
}

// productRow is the flat scan target for the product/segment/type join.
type productRow struct {
	ID          string
	Code        string
	Description string
	TypeID      string
	TypeCode    string
	TypeName    string
}

func (r productRow) dto() models.ProductDTO {
	return models.ProductDTO{
		ID:          r.ID,
		Code:        r.Code,
		Description: r.Description,
		ProductType: models.ProductType{ID: r.TypeID, Code: r.TypeCode, Name: r.TypeName},
	}
}

// productQuery joins active products to their type through the segment table.
func (s *Store) productQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Table("products").
		Select("products.id, products.code, products.description, "+
			"product_types.id AS type_id, product_types.code AS type_code, product_types.name AS type_name").
		Joins("JOIN segments ON segments.id = products.segment_id").
		Joins("JOIN product_types ON product_types.id = segments.segment1_id").
		Where("products.active_status = 0")
}

func (s *Store) Products(ctx context.Context) ([]models.ProductDTO, error) {
	var rows []productRow
	if err := s.productQuery(ctx).Scan(&rows).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, err)
	}
	out := make([]models.ProductDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.dto())
	}
	return out, nil
}

func (s *Store) Product(ctx context.Context, id string) (models.ProductDTO, error) {
	var rows []productRow
	if err := s.productQuery(ctx).Where("products.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return models.ProductDTO{}, apperr.Wrap(apperr.Internal, err)
	}
	if len(rows) == 0 {
		return models.ProductDTO{}, apperr.New(apperr.NotFound, "product not found")
	}
	return rows[0].dto(), nil
}

func (s *Store) ProductsByType(ctx context.Context, typeID string) ([]models.ProductDTO, error) {
	var rows []productRow
	if err := s.productQuery(ctx).Where("product_types.id = ?", typeID).Scan(&rows).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, err)
	}
	out := make([]models.ProductDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.dto())
	}
	return out, nil
}

// LabelLookup resolves a printed label by serial and canonical type code,
// then attaches the product and the product type the caller asked for. Any
// missing link is a plain not-found.
func (s *Store) LabelLookup(ctx context.Context, serial int, canonicalCode, requestedTypeCode string) (models.LabelDTO, error) {
	var out models.LabelDTO
	var label models.Label
	err := s.db.WithContext(ctx).
		Where("serial = ? AND product_type_code = ?", serial, canonicalCode).
		Take(&label).Error
	if err != nil {
		return out, wrapLookup(err)
	}
	var p models.Product
	if err := s.db.WithContext(ctx).First(&p, "id = ?", label.ProductID).Error; err != nil {
		return out, wrapLookup(err)
	}
	var pt models.ProductType
	if err := s.db.WithContext(ctx).First(&pt, "code = ?", requestedTypeCode).Error; err != nil {
		return out, wrapLookup(err)
	}
	out.Serial = label.Serial
	out.Product = models.ProductDTO{
		ID:          p.ID,
		Code:        p.Code,
		Description: p.Description,
		ProductType: pt,
	}
	return out, nil
}

type problemRow struct {
	ID           string
	Code         string
	Name         string
	CategoryID   *string
	CategoryName *string
}

func (r problemRow) dto() models.ProblemDTO {
	d := models.ProblemDTO{ID: r.ID, Code: r.Code, Name: r.Name}
	if r.CategoryID != nil {
		d.Category = &models.Category{ID: *r.CategoryID}
		if r.CategoryName != nil {
			d.Category.Name = *r.CategoryName
		}
	}
	return d
}

// Problems left-joins the category so uncategorized problems still list.
func (s *Store) Problems(ctx context.Context) ([]models.ProblemDTO, error) {
	var rows []problemRow
	err := s.db.WithContext(ctx).Table("problems").
		Select("problems.id, problems.code, problems.name, " +
			"categories.id AS category_id, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = problems.category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err)
	}
	out := make([]models.ProblemDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.dto())
	}
	return out, nil
}

func (s *Store) Problem(ctx context.Context, id string) (models.ProblemDTO, error) {
	var p models.Problem
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return models.ProblemDTO{}, wrapLookup(err)
	}
	d := models.ProblemDTO{ID: p.ID, Code: p.Code, Name: p.Name}
	if p.CategoryID != nil {
		var cat models.Category
		if err := s.db.WithContext(ctx).First(&cat, "id = ?", *p.CategoryID).Error; err == nil {
			d.Category = &cat
		}
	}
	return d, nil
}
