package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"claimscore/internal/apperr"
	"claimscore/internal/models"
)

const (
	typeStoveID  = "11111111-1111-1111-1111-111111111111"
	typeHeaterID = "22222222-2222-2222-2222-222222222222"
	segStoveID   = "33333333-3333-3333-3333-333333333333"
	prodStoveID  = "44444444-4444-4444-4444-444444444444"
	prodDeadID   = "55555555-5555-5555-5555-555555555555"
	catID        = "66666666-6666-6666-6666-666666666666"
	probWithCat  = "77777777-7777-7777-7777-777777777777"
	probNoCat    = "88888888-8888-8888-8888-888888888888"
)

func seedCatalog(t *testing.T, st *Store) {
	t.Helper()
	catIDv := catID
	require.NoError(t, st.db.Create(&models.ProductType{ID: typeStoveID, Code: "C", Name: "Cocina"}).Error)
	require.NoError(t, st.db.Create(&models.ProductType{ID: typeHeaterID, Code: "CA", Name: "Calefon"}).Error)
	require.NoError(t, st.db.Create(&models.Segment{ID: segStoveID, Segment1ID: typeStoveID, Name1: "Cocinas"}).Error)
	require.NoError(t, st.db.Create(&models.Product{ID: prodStoveID, Code: "CANDOR", Description: "Cocina Candor", SegmentID: segStoveID}).Error)
	require.NoError(t, st.db.Create(&models.Product{ID: prodDeadID, Code: "VIEJA", Description: "Discontinuada", SegmentID: segStoveID, ActiveStatus: 1}).Error)
	require.NoError(t, st.db.Create(&models.Category{ID: catID, Name: "Encendido"}).Error)
	require.NoError(t, st.db.Create(&models.Problem{ID: probWithCat, Code: "ENC1", Name: "No enciende", CategoryID: &catIDv}).Error)
	require.NoError(t, st.db.Create(&models.Problem{ID: probNoCat, Code: "OTR1", Name: "Otro"}).Error)
	require.NoError(t, st.db.Create(&models.Label{Serial: 1001, ProductTypeCode: "COCINA", ProductID: prodStoveID}).Error)
}

func TestFindCredentialExactMatch(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, st.db.Create(&models.Credential{
		ID: "99999999-9999-9999-9999-999999999999", User: "jdoe", Password: "S3cret",
		Name: "Juan", LastName: "Doe", Mail: "jdoe@example.com", Role: "2 - Usuario",
	}).Error)

	cred, err := st.FindCredential(ctx, "jdoe", "S3cret")
	require.NoError(t, err)
	require.Equal(t, "jdoe", cred.User)
	require.Equal(t, "2 - Usuario", cred.Role)

	// comparison is case-sensitive on both columns
	_, err = st.FindCredential(ctx, "JDOE", "S3cret")
	require.Equal(t, apperr.Unauthorized, apperr.KindOf(err))
	_, err = st.FindCredential(ctx, "jdoe", "s3cret")
	require.Equal(t, apperr.Unauthorized, apperr.KindOf(err))
	_, err = st.FindCredential(ctx, "jdoe", "wrong")
	require.Equal(t, apperr.Unauthorized, apperr.KindOf(err))
}

func TestFindCredentialEmptyInput(t *testing.T) {
	st := newTestStore(t)
	_, err := st.FindCredential(context.Background(), "", "pw")
	require.Equal(t, apperr.InvalidInput, apperr.KindOf(err))
	_, err = st.FindCredential(context.Background(), "user", "")
	require.Equal(t, apperr.InvalidInput, apperr.KindOf(err))
}

func TestProductsJoinFiltersInactive(t *testing.T) {
	st := newTestStore(t)
	seedCatalog(t, st)

	rows, err := st.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, prodStoveID, rows[0].ID)
	require.Equal(t, "CANDOR", rows[0].Code)
	require.Equal(t, typeStoveID, rows[0].ProductType.ID)
	require.Equal(t, "Cocina", rows[0].ProductType.Name)
}

func TestProductByID(t *testing.T) {
	st := newTestStore(t)
	seedCatalog(t, st)
	ctx := context.Background()

	p, err := st.Product(ctx, prodStoveID)
	require.NoError(t, err)
	require.Equal(t, "Cocina Candor", p.Description)

	// inactive products are invisible even by id
	_, err = st.Product(ctx, prodDeadID)
	require.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestProductsByType(t *testing.T) {
	st := newTestStore(t)
	seedCatalog(t, st)
	ctx := context.Background()

	rows, err := st.ProductsByType(ctx, typeStoveID)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	rows, err = st.ProductsByType(ctx, typeHeaterID)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestProblemsLeftJoinCategory(t *testing.T) {
	st := newTestStore(t)
	seedCatalog(t, st)

	rows, err := st.Problems(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byID := map[string]models.ProblemDTO{}
	for _, r := range rows {
		byID[r.ID] = r
	}
	require.NotNil(t, byID[probWithCat].Category)
	require.Equal(t, "Encendido", byID[probWithCat].Category.Name)
	require.Nil(t, byID[probNoCat].Category)
}

func TestProblemByID(t *testing.T) {
	st := newTestStore(t)
	seedCatalog(t, st)
	ctx := context.Background()

	p, err := st.Problem(ctx, probWithCat)
	require.NoError(t, err)
	require.Equal(t, "No enciende", p.Name)
	require.NotNil(t, p.Category)

	_, err = st.Problem(ctx, "00000000-0000-0000-0000-00000000dead")
	require.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestLabelLookup(t *testing.T) {
	st := newTestStore(t)
	seedCatalog(t, st)
	ctx := context.Background()

	out, err := st.LabelLookup(ctx, 1001, "COCINA", "C")
	require.NoError(t, err)
	require.Equal(t, 1001, out.Serial)
	require.Equal(t, prodStoveID, out.Product.ID)
	require.Equal(t, "C", out.Product.ProductType.Code)

	_, err = st.LabelLookup(ctx, 1001, "TERMOTANQUE", "CA")
	require.Equal(t, apperr.NotFound, apperr.KindOf(err))
	_, err = st.LabelLookup(ctx, 4242, "COCINA", "C")
	require.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestSimpleLookups(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	provID := "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	techID := "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
	ttID := "cccccccc-cccc-cccc-cccc-cccccccccccc"
	require.NoError(t, st.db.Create(&models.Province{ID: provID, Name: "Córdoba"}).Error)
	require.NoError(t, st.db.Create(&models.TechnicianType{ID: ttID, Code: "OF", Name: "Oficial"}).Error)
	require.NoError(t, st.db.Create(&models.Technician{ID: techID, Code: "T-9", Name: "Servicio Centro", TechnicianTypeID: ttID}).Error)

	provs, err := st.Provinces(ctx)
	require.NoError(t, err)
	require.Len(t, provs, 1)

	p, err := st.Province(ctx, provID)
	require.NoError(t, err)
	require.Equal(t, "Córdoba", p.Name)

	tech, err := st.Technician(ctx, techID)
	require.NoError(t, err)
	require.Equal(t, "Servicio Centro", tech.Name)

	tt, err := st.TechnicianType(ctx, ttID)
	require.NoError(t, err)
	require.Equal(t, "Oficial", tt.Name)

	_, err = st.Technician(ctx, provID)
	require.Equal(t, apperr.NotFound, apperr.KindOf(err))
}
