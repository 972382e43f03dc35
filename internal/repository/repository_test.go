package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"fbr-invoice-backend/internal/database"
	"fbr-invoice-backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	u := &model.User{
		Name:         "Seller",
		Email:        email,
		Password:     "x",
		BusinessName: "Seller Ltd",
		Province:     "Punjab",
		Address:      "1 Mall Road",
		NTNCNIC:      "1234567",
		Role:         model.RoleUser,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), u))
	return u
}

func seedInvoice(t *testing.T, db *gorm.DB, user *model.User, isTest bool, items ...model.InvoiceItem) *model.Invoice {
	t.Helper()
	buyer := &model.Buyer{
		UserID:           user.ID,
		NTNCNIC:          "7654321",
		BusinessName:     "Buyer Co",
		Province:         "Sindh",
		Address:          "22 Clifton",
		RegistrationType: model.RegistrationRegistered,
	}
	require.NoError(t, NewBuyerRepository(db).Create(context.Background(), buyer))

	inv := &model.Invoice{
		UserID:            user.ID,
		BuyerID:           buyer.ID,
		InvoiceType:       "Sale Invoice",
		InvoiceDate:       time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		FBRResponse:       datatypes.JSON(`{"invoiceNumber":"7000123456"}`),
		IsTestEnvironment: isTest,
		Items:             items,
	}
	require.NoError(t, NewInvoiceRepository(db).Create(context.Background(), inv))
	return inv
}

func line(no int, hs string) model.InvoiceItem {
	return model.InvoiceItem{
		LineNo:             no,
		HSCode:             hs,
		ProductDescription: "Widget",
		Rate:               "18%",
		UoM:                "Numbers, pieces, units",
		Quantity:           decimal.RequireFromString("2.5"),
		TotalValues:        decimal.NewFromInt(118),
		SalesTaxApplicable: decimal.NewFromInt(18),
	}
}

func TestHSCodeUniquePerUser(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewHSCodeRepository(db)
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")

	require.NoError(t, repo.Create(ctx, &model.HSCode{UserID: alice.ID, HSCode: "0101.2100"}))
	require.NoError(t, repo.Create(ctx, &model.HSCode{UserID: bob.ID, HSCode: "0101.2100"}))

	err := repo.Create(ctx, &model.HSCode{UserID: alice.ID, HSCode: "0101.2100"})
	assert.ErrorIs(t, err, ErrDuplicate)

	found, err := repo.FindByCode(ctx, bob.ID, "0101.2100")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, found.UserID)

	_, err = repo.FindByID(ctx, bob.ID, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHSCodeFindByIDsIgnoresForeignRows(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewHSCodeRepository(db)
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")

	mine := &model.HSCode{UserID: alice.ID, HSCode: "1111"}
	theirs := &model.HSCode{UserID: bob.ID, HSCode: "2222"}
	require.NoError(t, repo.Create(ctx, mine))
	require.NoError(t, repo.Create(ctx, theirs))

	codes, err := repo.FindByIDs(ctx, alice.ID, []uuid.UUID{mine.ID, theirs.ID})
	require.NoError(t, err)
	require.Len(t, codes, 1)
	assert.Equal(t, mine.ID, codes[0].ID)
}

func TestScenarioUpsertRefreshesCopiedFields(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewScenarioRepository(db)
	user := seedUser(t, db, "alice@example.com")

	global := &model.GlobalScenario{ScenarioCode: "SN001", ScenarioDescription: "Goods at standard rate", SalesType: "Goods at standard rate (default)"}
	require.NoError(t, NewGlobalScenarioRepository(db).Create(ctx, global))

	first, err := repo.Upsert(ctx, user.ID, global)
	require.NoError(t, err)

	global.ScenarioDescription = "Updated description"
	second, err := repo.Upsert(ctx, user.ID, global)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Updated description", second.ScenarioDescription)
	assert.Equal(t, "Goods at standard rate (default)", second.SalesType)

	count, err := repo.CountByCode(ctx, "SN001")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestGlobalScenarioCodeUnique(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewGlobalScenarioRepository(db)

	require.NoError(t, repo.Create(ctx, &model.GlobalScenario{ScenarioCode: "SN002", ScenarioDescription: "Reduced rate"}))
	err := repo.Create(ctx, &model.GlobalScenario{ScenarioCode: "SN002", ScenarioDescription: "Again"})
	assert.ErrorIs(t, err, ErrDuplicate)

	found, err := repo.FindByCodes(ctx, []string{"SN002", "SN999"})
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestInvoiceListFiltersAndOrdersItems(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewInvoiceRepository(db)
	user := seedUser(t, db, "alice@example.com")
	other := seedUser(t, db, "bob@example.com")

	sandbox := seedInvoice(t, db, user, true, line(2, "2222"), line(1, "1111"))
	seedInvoice(t, db, user, false, line(1, "3333"))
	seedInvoice(t, db, other, true, line(1, "4444"))

	isTest := true
	invoices, total, err := repo.List(ctx, InvoiceListFilter{UserID: user.ID, IsTestEnvironment: &isTest, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, invoices, 1)
	assert.Equal(t, sandbox.ID, invoices[0].ID)

	full, err := repo.FindByIDWithRelations(ctx, user.ID, sandbox.ID, true)
	require.NoError(t, err)
	require.Len(t, full.Items, 2)
	assert.Equal(t, "1111", full.Items[0].HSCode)
	assert.Equal(t, "2222", full.Items[1].HSCode)
	require.NotNil(t, full.Buyer)
	require.NotNil(t, full.User)
	assert.True(t, full.Items[0].Quantity.Equal(decimal.RequireFromString("2.5")))

	_, total, err = repo.List(ctx, InvoiceListFilter{UserID: user.ID, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	_, err = repo.FindByID(ctx, other.ID, sandbox.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvoiceDeleteRemovesItems(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewInvoiceRepository(db)
	user := seedUser(t, db, "alice@example.com")
	inv := seedInvoice(t, db, user, true, line(1, "1111"), line(2, "2222"))

	require.NoError(t, repo.Delete(ctx, inv))

	var items int64
	require.NoError(t, db.Model(&model.InvoiceItem{}).Where("invoice_id = ?", inv.ID).Count(&items).Error)
	assert.Zero(t, items)
	_, err := repo.FindByID(ctx, user.ID, inv.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCustomFieldCountInvoiceItems(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCustomFieldRepository(db)
	user := seedUser(t, db, "alice@example.com")

	used := &model.CustomField{UserID: user.ID, FieldName: "batchNo", FieldType: model.FieldTypeText, IsActive: true}
	unused := &model.CustomField{UserID: user.ID, FieldName: "colour", FieldType: model.FieldTypeText, IsActive: true}
	require.NoError(t, repo.Create(ctx, used))
	require.NoError(t, repo.Create(ctx, unused))

	it := line(1, "1111")
	it.CustomFields = datatypes.NewJSONType([]model.ItemCustomField{{CustomFieldID: used.ID, FieldName: "batchNo", Value: "B-7"}})
	seedInvoice(t, db, user, true, it)

	n, err := repo.CountInvoiceItems(ctx, used.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	n, err = repo.CountInvoiceItems(ctx, unused.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	unused.IsActive = false
	require.NoError(t, repo.Update(ctx, unused))
	active, err := repo.List(ctx, user.ID, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, used.ID, active[0].ID)

	all, err := repo.List(ctx, user.ID, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPrintSettingsUpsertKeepsOneRow(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPrintSettingsRepository(db)
	user := seedUser(t, db, "alice@example.com")

	save := func(fields []string, font string) *model.PrintSettings {
		widths := make(map[string]int, len(fields))
		for _, f := range fields {
			widths[f] = 100 / len(fields)
		}
		saved, err := repo.Upsert(ctx, &model.PrintSettings{
			UserID:        user.ID,
			VisibleFields: datatypes.NewJSONType(fields),
			ColumnWidths:  datatypes.NewJSONType(widths),
			FontSize:      font,
		})
		require.NoError(t, err)
		return saved
	}

	first := save([]string{"productDescription", "hsCode"}, model.FontSmall)
	second := save([]string{"quantity"}, model.FontLarge)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, []string{"quantity"}, second.VisibleFields.Data())
	assert.Equal(t, model.FontLarge, second.FontSize)

	deleted, err := repo.DeleteByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = repo.DeleteByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestUserDeleteCascadesAndKeepsAudit(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(db)
	audit := NewAuditRepository(db)
	user := seedUser(t, db, "alice@example.com")
	seedInvoice(t, db, user, true, line(1, "1111"))

	uid := user.ID
	require.NoError(t, audit.Log(ctx, &model.AuditLog{UserID: &uid, Action: model.ActionSubmitInvoice, EntityID: "x"}))

	tx := NewTransactionManager(db)
	require.NoError(t, tx.RunInTx(ctx, func(txCtx context.Context) error {
		return users.Delete(txCtx, user.ID)
	}))

	_, err := users.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var invoices, items int64
	require.NoError(t, db.Model(&model.Invoice{}).Count(&invoices).Error)
	require.NoError(t, db.Model(&model.InvoiceItem{}).Count(&items).Error)
	assert.Zero(t, invoices)
	assert.Zero(t, items)

	logs, total, err := audit.List(ctx, "", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Nil(t, logs[0].UserID)
}

func TestRunInTxRollsBack(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(db)
	boom := errors.New("boom")

	err := NewTransactionManager(db).RunInTx(ctx, func(txCtx context.Context) error {
		require.NoError(t, users.Create(txCtx, &model.User{
			Name: "Temp", Email: "temp@example.com", Password: "x", BusinessName: "T",
			Province: "P", Address: "Somewhere", NTNCNIC: "1", Role: model.RoleUser,
		}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = users.GetByEmail(ctx, "temp@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRunInTxNestedCallsJoinOuterTransaction(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(db)
	tx := NewTransactionManager(db)
	boom := errors.New("boom")
	newUser := func(email string) *model.User {
		return &model.User{
			Name: "Temp", Email: email, Password: "x", BusinessName: "T",
			Province: "P", Address: "Somewhere", NTNCNIC: "1", Role: model.RoleUser,
		}
	}

	err := tx.RunInTx(ctx, func(outer context.Context) error {
		require.NoError(t, users.Create(outer, newUser("outer@example.com")))
		return tx.RunInTx(outer, func(inner context.Context) error {
			require.NoError(t, users.Create(inner, newUser("inner@example.com")))
			return boom
		})
	})
	assert.ErrorIs(t, err, boom)
	for _, email := range []string{"outer@example.com", "inner@example.com"} {
		_, err = users.GetByEmail(ctx, email)
		assert.ErrorIs(t, err, ErrNotFound, email)
	}

	err = tx.RunInTx(ctx, func(outer context.Context) error {
		return tx.RunInTx(outer, func(inner context.Context) error {
			return users.Create(inner, newUser("kept@example.com"))
		})
	})
	require.NoError(t, err)
	_, err = users.GetByEmail(ctx, "kept@example.com")
	assert.NoError(t, err)
}

func TestAuditListFiltersByAction(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	audit := NewAuditRepository(db)

	require.NoError(t, audit.Log(ctx, &model.AuditLog{Action: model.ActionSubmitInvoice, EntityID: "a"}))
	require.NoError(t, audit.Log(ctx, &model.AuditLog{Action: model.ActionDeleteInvoice, EntityID: "b"}))
	require.NoError(t, audit.Log(ctx, &model.AuditLog{Action: model.ActionSubmitInvoice, EntityID: "c"}))

	logs, total, err := audit.List(ctx, model.ActionSubmitInvoice, 1, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, logs, 1)
}
