package repositories

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/PrassV/Propo-Staging-sub002/internal/database"
	"github.com/PrassV/Propo-Staging-sub002/internal/models"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	// Skip container setup if running in short mode
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start postgres container: %v\n", err)
		os.Exit(1)
	}

	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to terminate postgres container: %v\n", err)
		}
	}()

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get connection string: %v\n", err)
		os.Exit(1)
	}

	testPool, err = pgxpool.New(ctx, connStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to test database: %v\n", err)
		os.Exit(1)
	}
	defer testPool.Close()

	if err := database.RunMigrations(testPool); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run migrations: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

// setupTestDB returns the shared pool and registers cleanup to truncate tables
func setupTestDB(t *testing.T) *pgxpool.Pool {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	t.Cleanup(func() {
		ctx := context.Background()
		_, err := testPool.Exec(ctx, "TRUNCATE users, sessions, properties, units, tenants, leases, payments, vendors, maintenance_requests, documents CASCADE")
		if err != nil {
			t.Logf("Failed to truncate tables: %v", err)
		}
	})

	return testPool
}

func seedUser(t *testing.T, pool *pgxpool.Pool) *models.User {
	t.Helper()
	user := &models.User{
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		FullName:     "Test Owner",
	}
	require.NoError(t, NewUserRepository(pool).Create(user))
	return user
}

func seedProperty(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) *models.Property {
	t.Helper()
	property := &models.Property{
		OwnerID:      ownerID,
		Name:         "Maple Court",
		Address:      "12 Maple St",
		City:         "Springfield",
		State:        "IL",
		ZipCode:      "62704",
		PropertyType: "residential",
	}
	require.NoError(t, NewPropertyRepository(pool).Create(property))
	return property
}

func seedUnit(t *testing.T, pool *pgxpool.Pool, propertyID uuid.UUID, number string) *models.Unit {
	t.Helper()
	unit := &models.Unit{
		PropertyID: propertyID,
		UnitNumber: number,
	}
	require.NoError(t, NewUnitRepository(pool).Create(unit))
	return unit
}

func seedTenant(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) *models.Tenant {
	t.Helper()
	tenant := &models.Tenant{
		OwnerID:  ownerID,
		FullName: "Jordan Casey",
		Email:    uuid.NewString() + "@example.com",
	}
	require.NoError(t, NewTenantRepository(pool).Create(tenant))
	return tenant
}

func seedLease(t *testing.T, pool *pgxpool.Pool, unitID, tenantID uuid.UUID) *models.Lease {
	t.Helper()
	lease := &models.Lease{
		UnitID:     unitID,
		TenantID:   tenantID,
		StartDate:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		RentAmount: 120000,
		Frequency:  models.FrequencyMonthly,
	}
	require.NoError(t, NewLeaseRepository(pool).Create(lease))
	return lease
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewUserRepository(pool)

	user := seedUser(t, pool)

	byEmail, err := repo.FindByEmail(user.Email)
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "owner", byEmail.Role)

	byID, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, user.Email, byID.Email)

	missing, err := repo.FindByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewUserRepository(pool)

	user := seedUser(t, pool)

	dup := &models.User{Email: user.Email, PasswordHash: "x", FullName: "Dup"}
	assert.Error(t, repo.Create(dup))
}

func TestUserRepository_TouchLastLogin(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewUserRepository(pool)

	user := seedUser(t, pool)
	require.NoError(t, repo.TouchLastLogin(user.ID))

	updated, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.LastLoginAt)
	assert.WithinDuration(t, time.Now(), *updated.LastLoginAt, 5*time.Second)
}

func TestSessionRepository_Lifecycle(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewSessionRepository(pool)
	user := seedUser(t, pool)

	session := &models.Session{
		UserID:       user.ID,
		RefreshToken: "refresh-token-value",
		ExpiresAt:    time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(session))

	found, err := repo.FindByToken("refresh-token-value")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.UserID)
	assert.False(t, found.IsRevoked)

	require.NoError(t, repo.Revoke("refresh-token-value"))
	revoked, err := repo.FindByToken("refresh-token-value")
	require.NoError(t, err)
	assert.True(t, revoked.IsRevoked)
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewSessionRepository(pool)
	user := seedUser(t, pool)

	expired := &models.Session{UserID: user.ID, RefreshToken: "old", ExpiresAt: time.Now().Add(-time.Hour)}
	live := &models.Session{UserID: user.ID, RefreshToken: "new", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repo.Create(expired))
	require.NoError(t, repo.Create(live))

	deleted, err := repo.DeleteExpired()
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	remaining, err := repo.FindByToken("new")
	require.NoError(t, err)
	assert.NotNil(t, remaining)
}

func TestPropertyRepository_OwnershipScoping(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewPropertyRepository(pool)

	owner := seedUser(t, pool)
	stranger := seedUser(t, pool)
	property := seedProperty(t, pool, owner.ID)

	mine, err := repo.GetByIDAndOwnerID(property.ID, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, mine)
	assert.Equal(t, "Maple Court", mine.Name)

	theirs, err := repo.GetByIDAndOwnerID(property.ID, stranger.ID)
	require.NoError(t, err)
	assert.Nil(t, theirs)
}

func TestPropertyRepository_ListFilters(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewPropertyRepository(pool)
	owner := seedUser(t, pool)

	seedProperty(t, pool, owner.ID)
	other := &models.Property{
		OwnerID: owner.ID, Name: "Warehouse 9", Address: "1 Dock Rd",
		City: "Gary", State: "IN", ZipCode: "46402", PropertyType: "commercial",
	}
	require.NoError(t, repo.Create(other))

	all, err := repo.ListByOwnerID(owner.ID, PropertyFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	commercial, err := repo.ListByOwnerID(owner.ID, PropertyFilter{Type: "commercial"})
	require.NoError(t, err)
	require.Len(t, commercial, 1)
	assert.Equal(t, "Warehouse 9", commercial[0].Name)

	springfield, err := repo.ListByOwnerID(owner.ID, PropertyFilter{City: "Springfield"})
	require.NoError(t, err)
	assert.Len(t, springfield, 1)
}

func TestUnitRepository_UniquePerProperty(t *testing.T) {
	pool := setupTestDB(t)
	owner := seedUser(t, pool)
	property := seedProperty(t, pool, owner.ID)

	seedUnit(t, pool, property.ID, "1A")

	dup := &models.Unit{PropertyID: property.ID, UnitNumber: "1A"}
	assert.Error(t, NewUnitRepository(pool).Create(dup))
}

func TestUnitRepository_GetByIDForOwner(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewUnitRepository(pool)

	owner := seedUser(t, pool)
	stranger := seedUser(t, pool)
	property := seedProperty(t, pool, owner.ID)
	unit := seedUnit(t, pool, property.ID, "2B")

	mine, err := repo.GetByIDForOwner(unit.ID, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, mine)
	assert.Equal(t, models.UnitStatusVacant, mine.Status)

	theirs, err := repo.GetByIDForOwner(unit.ID, stranger.ID)
	require.NoError(t, err)
	assert.Nil(t, theirs)
}

func TestLeaseRepository_OneActiveLeasePerUnit(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewLeaseRepository(pool)

	owner := seedUser(t, pool)
	property := seedProperty(t, pool, owner.ID)
	unit := seedUnit(t, pool, property.ID, "3C")
	tenant := seedTenant(t, pool, owner.ID)

	seedLease(t, pool, unit.ID, tenant.ID)

	active, err := repo.HasActiveLeaseForUnit(unit.ID)
	require.NoError(t, err)
	assert.True(t, active)

	// The partial unique index rejects a second active lease.
	second := &models.Lease{
		UnitID:     unit.ID,
		TenantID:   tenant.ID,
		StartDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		RentAmount: 130000,
		Frequency:  models.FrequencyMonthly,
	}
	assert.Error(t, repo.Create(second))
}

func TestLeaseRepository_TerminatedUnitAcceptsNewLease(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewLeaseRepository(pool)

	owner := seedUser(t, pool)
	property := seedProperty(t, pool, owner.ID)
	unit := seedUnit(t, pool, property.ID, "4D")
	tenant := seedTenant(t, pool, owner.ID)

	first := seedLease(t, pool, unit.ID, tenant.ID)
	require.NoError(t, repo.UpdateStatus(first.ID, models.LeaseStatusTerminated))

	active, err := repo.HasActiveLeaseForUnit(unit.ID)
	require.NoError(t, err)
	assert.False(t, active)

	seedLease(t, pool, unit.ID, tenant.ID)
}

func TestLeaseRepository_ListActive(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewLeaseRepository(pool)

	owner := seedUser(t, pool)
	property := seedProperty(t, pool, owner.ID)
	unitA := seedUnit(t, pool, property.ID, "5A")
	unitB := seedUnit(t, pool, property.ID, "5B")
	tenant := seedTenant(t, pool, owner.ID)

	seedLease(t, pool, unitA.ID, tenant.ID)
	terminated := seedLease(t, pool, unitB.ID, tenant.ID)
	require.NoError(t, repo.UpdateStatus(terminated.ID, models.LeaseStatusTerminated))

	active, err := repo.ListActive()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, unitA.ID, active[0].UnitID)
}

func TestPaymentRepository_CreateIfAbsentIsIdempotent(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewPaymentRepository(pool)

	owner := seedUser(t, pool)
	property := seedProperty(t, pool, owner.ID)
	unit := seedUnit(t, pool, property.ID, "6A")
	tenant := seedTenant(t, pool, owner.ID)
	lease := seedLease(t, pool, unit.ID, tenant.ID)

	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	payment := &models.Payment{
		LeaseID:     lease.ID,
		PeriodStart: start,
		PeriodEnd:   start.AddDate(0, 1, 0),
		DueDate:     start,
		Amount:      120000,
	}

	inserted, err := repo.CreateIfAbsent(payment)
	require.NoError(t, err)
	assert.True(t, inserted)

	again := &models.Payment{
		LeaseID:     lease.ID,
		PeriodStart: start,
		PeriodEnd:   start.AddDate(0, 1, 0),
		DueDate:     start,
		Amount:      120000,
	}
	inserted, err = repo.CreateIfAbsent(again)
	require.NoError(t, err)
	assert.False(t, inserted)

	payments, err := repo.ListForOwner(owner.ID, PaymentFilter{LeaseID: lease.ID})
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestPaymentRepository_MarkPaidGuardsDoublePay(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewPaymentRepository(pool)

	owner := seedUser(t, pool)
	property := seedProperty(t, pool, owner.ID)
	unit := seedUnit(t, pool, property.ID, "7A")
	tenant := seedTenant(t, pool, owner.ID)
	lease := seedLease(t, pool, unit.ID, tenant.ID)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	payment := &models.Payment{
		LeaseID: lease.ID, PeriodStart: start, PeriodEnd: start.AddDate(0, 1, 0),
		DueDate: start, Amount: 120000,
	}
	_, err := repo.CreateIfAbsent(payment)
	require.NoError(t, err)

	require.NoError(t, repo.MarkPaid(payment.ID, time.Now(), "bank_transfer"))
	assert.Error(t, repo.MarkPaid(payment.ID, time.Now(), "cash"))

	paid, err := repo.GetByIDForOwner(payment.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, paid.Status)
	require.NotNil(t, paid.Method)
	assert.Equal(t, "bank_transfer", *paid.Method)
}

func TestPaymentRepository_MarkOverdue(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewPaymentRepository(pool)

	owner := seedUser(t, pool)
	property := seedProperty(t, pool, owner.ID)
	unit := seedUnit(t, pool, property.ID, "8A")
	tenant := seedTenant(t, pool, owner.ID)
	lease := seedLease(t, pool, unit.ID, tenant.ID)

	past := time.Now().AddDate(0, -1, 0)
	future := time.Now().AddDate(0, 1, 0)

	late := &models.Payment{LeaseID: lease.ID, PeriodStart: past, PeriodEnd: past.AddDate(0, 1, 0), DueDate: past, Amount: 120000}
	upcoming := &models.Payment{LeaseID: lease.ID, PeriodStart: future, PeriodEnd: future.AddDate(0, 1, 0), DueDate: future, Amount: 120000}
	_, err := repo.CreateIfAbsent(late)
	require.NoError(t, err)
	_, err = repo.CreateIfAbsent(upcoming)
	require.NoError(t, err)

	flipped, err := repo.MarkOverdue(time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), flipped)

	overdue, err := repo.ListForOwner(owner.ID, PaymentFilter{Status: "overdue"})
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, late.ID, overdue[0].ID)
}

func TestMaintenanceRepository_Lifecycle(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewMaintenanceRepository(pool)

	owner := seedUser(t, pool)
	property := seedProperty(t, pool, owner.ID)

	request := &models.MaintenanceRequest{
		PropertyID:  property.ID,
		Title:       "Broken boiler",
		Description: "No hot water in unit 2B",
		Priority:    models.MaintenancePriorityHigh,
	}
	require.NoError(t, repo.Create(request))

	found, err := repo.GetByIDForOwner(request.ID, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, models.MaintenanceStatusNew, found.Status)

	vendor := &models.Vendor{OwnerID: owner.ID, Name: "Acme Plumbing", Category: "plumbing"}
	require.NoError(t, NewVendorRepository(pool).Create(vendor))
	require.NoError(t, repo.AssignVendor(request.ID, vendor.ID))

	completedAt := time.Now()
	require.NoError(t, repo.UpdateStatus(request.ID, models.MaintenanceStatusCompleted, &completedAt))

	done, err := repo.GetByIDForOwner(request.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MaintenanceStatusCompleted, done.Status)
	require.NotNil(t, done.CompletedAt)
	require.NotNil(t, done.VendorID)
	assert.Equal(t, vendor.ID, *done.VendorID)
}

func TestDocumentRepository_ScopedAndUnscopedLookup(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewDocumentRepository(pool)

	owner := seedUser(t, pool)
	stranger := seedUser(t, pool)

	doc := &models.Document{
		OwnerID:     owner.ID,
		FileName:    "lease.pdf",
		ObjectKey:   uuid.NewString() + ".pdf",
		ContentType: "application/pdf",
		SizeBytes:   2048,
	}
	require.NoError(t, repo.Create(doc))

	mine, err := repo.GetByIDAndOwnerID(doc.ID, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, mine)
	assert.Equal(t, "documents", mine.Bucket)

	theirs, err := repo.GetByIDAndOwnerID(doc.ID, stranger.ID)
	require.NoError(t, err)
	assert.Nil(t, theirs)

	// Token-authenticated downloads resolve without an owner.
	unscoped, err := repo.GetByID(doc.ID)
	require.NoError(t, err)
	require.NotNil(t, unscoped)
	assert.Equal(t, doc.ObjectKey, unscoped.ObjectKey)
}
