package directory

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"skillsconnect/internal/database"
	"skillsconnect/internal/domain"
	"skillsconnect/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Artisan{}, &domain.User{}))

	return NewService(repository.NewArtisanRepository(db), repository.NewUserRepository(db)), db
}

func registerRequest(email, phone string) RegisterRequest {
	return RegisterRequest{
		FirstName:       "Thabo",
		LastName:        "Nkosi",
		Email:           email,
		Phone:           phone,
		Password:        "secret-password",
		Location:        "Johannesburg, Gauteng",
		Services:        []string{"Builders"},
		YearsExperience: 7,
	}
}

func TestRegister_CreatesUnverifiedListingWithAccount(t *testing.T) {
	svc, db := newTestService(t)

	artisan, err := svc.Register(context.Background(), registerRequest("thabo@example.com", "+27110000001"))
	require.NoError(t, err)

	assert.False(t, artisan.Verified)
	assert.Equal(t, domain.ApprovalApproved, artisan.ApprovalStatus)
	assert.Equal(t, domain.TierUnverified, artisan.SubscriptionTier)
	assert.Equal(t, "0.00", artisan.Rating)
	assert.Equal(t, 0, artisan.ReviewCount)
	assert.Equal(t, domain.ServiceList{"builders"}, artisan.Services)

	var user domain.User
	require.NoError(t, db.Where("email = ?", "thabo@example.com").First(&user).Error)
	assert.Equal(t, domain.RoleArtisan, user.Role)
	require.NotNil(t, user.ArtisanID)
	assert.Equal(t, artisan.ID, *user.ArtisanID)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "secret-password", user.PasswordHash)
}

func TestApply_CreatesPendingApplication(t *testing.T) {
	svc, _ := newTestService(t)

	req := ApplyRequest(registerRequest("lindiwe@example.com", "+27110000002"))
	artisan, err := svc.Apply(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, artisan.Verified)
	assert.Equal(t, domain.ApprovalPending, artisan.ApprovalStatus)
	assert.Equal(t, domain.TierVerified, artisan.SubscriptionTier)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Register(context.Background(), registerRequest("dup@example.com", "+27110000003"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerRequest("dup@example.com", "+27110000004"))
	assert.ErrorIs(t, err, ErrEmailExists)

	// Case differences don't evade the check
	_, err = svc.Register(context.Background(), registerRequest("DUP@example.com", "+27110000005"))
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestRegister_DuplicatePhoneConflicts(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Register(context.Background(), registerRequest("first@example.com", "+27110000006"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerRequest("second@example.com", "+27110000006"))
	assert.ErrorIs(t, err, ErrPhoneExists)
}

func TestRegister_RejectsEmptyServices(t *testing.T) {
	svc, _ := newTestService(t)

	req := registerRequest("empty@example.com", "+27110000007")
	req.Services = []string{"  ", ""}
	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoServices)
}

func TestImport_ReportsPerRowFailures(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Register(context.Background(), registerRequest("taken@example.com", "+27110000008"))
	require.NoError(t, err)

	rows := []ImportRow{
		{FirstName: "Sipho", LastName: "Dlamini", Email: "sipho@example.com", Phone: "+27110000009",
			Location: "Pretoria, Gauteng", Services: []string{"plumbers"}},
		{FirstName: "Dup", LastName: "Email", Email: "taken@example.com", Phone: "+27110000010",
			Location: "Durban", Services: []string{"electricians"}},
		{FirstName: "No", LastName: "Services", Email: "bare@example.com", Phone: "+27110000011",
			Location: "Durban", Services: []string{}},
	}

	result, err := svc.Import(context.Background(), 99, rows)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	require.Len(t, result.Failed, 2)
	assert.Equal(t, 1, result.Failed[0].Index)
	assert.Equal(t, 2, result.Failed[1].Index)
}

func TestImport_ValidatesRowsIndividually(t *testing.T) {
	svc, _ := newTestService(t)

	rows := []ImportRow{
		{FirstName: "Good", LastName: "Row", Email: "good@example.com", Phone: "+27110000020",
			Location: "Durban", Services: []string{"tilers"}},
		{FirstName: "Bad", LastName: "Email", Email: "not-an-email", Phone: "+27110000021",
			Location: "Durban", Services: []string{"tilers"}},
		{LastName: "Missing", Email: "missing@example.com", Phone: "+27110000022",
			Location: "Durban", Services: []string{"tilers"}},
	}

	result, err := svc.Import(context.Background(), 99, rows)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	require.Len(t, result.Failed, 2)
	assert.Contains(t, result.Failed[0].Reason, "Email")
	assert.Contains(t, result.Failed[1].Reason, "FirstName")
}

func TestImport_CreatesVerifiedRecords(t *testing.T) {
	svc, db := newTestService(t)

	rows := []ImportRow{
		{FirstName: "Sipho", LastName: "Dlamini", Email: "sipho@example.com", Phone: "+27110000012",
			Location: "Pretoria, Gauteng", Services: []string{"plumbers"}},
	}
	result, err := svc.Import(context.Background(), 42, rows)
	require.NoError(t, err)
	require.Equal(t, 1, result.Imported)

	var artisan domain.Artisan
	require.NoError(t, db.Where("email = ?", "sipho@example.com").First(&artisan).Error)
	assert.True(t, artisan.Verified)
	assert.Equal(t, domain.ApprovalApproved, artisan.ApprovalStatus)
	assert.Equal(t, domain.TierVerified, artisan.SubscriptionTier)
	require.NotNil(t, artisan.ApprovedBy)
	assert.Equal(t, int64(42), *artisan.ApprovedBy)
	assert.NotNil(t, artisan.VerifiedAt)
}

func TestUpdateProfile_OwnerAndAdminOnly(t *testing.T) {
	svc, db := newTestService(t)

	artisan, err := svc.Register(context.Background(), registerRequest("owner@example.com", "+27110000013"))
	require.NoError(t, err)

	var owner domain.User
	require.NoError(t, db.Where("email = ?", "owner@example.com").First(&owner).Error)

	stranger := domain.User{Email: "stranger@example.com", PasswordHash: "x", Role: domain.RoleArtisan, Name: "Stranger"}
	require.NoError(t, db.Create(&stranger).Error)

	newDesc := "Quality brickwork and renovations"

	// Stranger is rejected
	_, err = svc.UpdateProfile(context.Background(), stranger.ID, "artisan", artisan.ID, UpdateProfileRequest{Description: &newDesc})
	assert.ErrorIs(t, err, ErrForbidden)

	// Owner succeeds
	updated, err := svc.UpdateProfile(context.Background(), owner.ID, "artisan", artisan.ID, UpdateProfileRequest{Description: &newDesc})
	require.NoError(t, err)
	assert.Equal(t, newDesc, updated.Description)

	// Admin succeeds without a linked profile
	adminDesc := "Edited by admin"
	updated, err = svc.UpdateProfile(context.Background(), 12345, "admin", artisan.ID, UpdateProfileRequest{Description: &adminDesc})
	require.NoError(t, err)
	assert.Equal(t, adminDesc, updated.Description)

	// Reputation fields survive edits untouched
	assert.Equal(t, "0.00", updated.Rating)
	assert.Equal(t, 0, updated.ReviewCount)
}
