package services

import (
	"encoding/json"
	"testing"

	"gorm.io/gorm"

	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

func newBackupService(db *gorm.DB) BackupServicer {
	return NewBackupService(db, NewAccountService(db), NewCategoryService(db), NewTransactionService(db))
}

func seedDataset(t *testing.T, db *gorm.DB) (*models.Account, *models.Category, *models.Transaction) {
	t.Helper()
	account := testutil.CreateTestAccountWithAmount(t, db, "100.00")
	category := testutil.CreateTestCategory(t, db)
	transaction := testutil.CreateTestTransaction(t, db, account.ID, category.ID, models.TransactionTypeIncome, "50.00", "2024-03-01T09:00:00Z")
	return account, category, transaction
}

func TestBackupExport(t *testing.T) {
	t.Run("document_shape", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newBackupService(db)

		account, category, transaction := seedDataset(t, db)

		raw, err := svc.Export()
		testutil.AssertNoError(t, err)

		var doc BackupDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			t.Fatalf("export is not valid JSON: %v", err)
		}
		if len(doc.Accounts) != 1 || doc.Accounts[0].ID != account.ID {
			t.Errorf("unexpected accounts: %+v", doc.Accounts)
		}
		if len(doc.Categories) != 1 || doc.Categories[0].ID != category.ID {
			t.Errorf("unexpected categories: %+v", doc.Categories)
		}
		if len(doc.Transactions) != 1 || doc.Transactions[0].ID != transaction.ID {
			t.Fatalf("unexpected transactions: %+v", doc.Transactions)
		}
		if doc.Transactions[0].AccountName != account.Name {
			t.Errorf("expected denormalized account name %q, got %q", account.Name, doc.Transactions[0].AccountName)
		}
		if doc.Transactions[0].CategoryName != category.Name {
			t.Errorf("expected denormalized category name %q, got %q", category.Name, doc.Transactions[0].CategoryName)
		}
	})

	t.Run("two_space_indentation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newBackupService(db)

		seedDataset(t, db)

		raw, err := svc.Export()
		testutil.AssertNoError(t, err)

		var buf []byte
		var doc BackupDocument
		testutil.AssertNoError(t, json.Unmarshal(raw, &doc))
		buf, err = json.MarshalIndent(&doc, "", "  ")
		testutil.AssertNoError(t, err)
		if string(raw) != string(buf) {
			t.Error("export is not two-space indented JSON")
		}
	})
}

func TestBackupRestore(t *testing.T) {
	t.Run("round_trip_preserves_rows_and_ids", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newBackupService(db)

		account, category, transaction := seedDataset(t, db)

		raw, err := svc.Export()
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, svc.Restore(raw))

		var accounts []models.Account
		var categories []models.Category
		var transactions []models.Transaction
		db.Order("id ASC").Find(&accounts)
		db.Order("id ASC").Find(&categories)
		db.Order("id ASC").Find(&transactions)

		if len(accounts) != 1 || accounts[0].ID != account.ID {
			t.Errorf("accounts did not round-trip: %+v", accounts)
		}
		if len(categories) != 1 || categories[0].ID != category.ID {
			t.Errorf("categories did not round-trip: %+v", categories)
		}
		if len(transactions) != 1 || transactions[0].ID != transaction.ID {
			t.Fatalf("transactions did not round-trip: %+v", transactions)
		}
		testutil.AssertDecimal(t, "50.00", transactions[0].Amount)
		if transactions[0].AccountID != account.ID || transactions[0].CategoryID != category.ID {
			t.Error("restored transaction lost its foreign keys")
		}
	})

	t.Run("replaces_existing_dataset", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newBackupService(db)

		seedDataset(t, db)
		raw, err := svc.Export()
		testutil.AssertNoError(t, err)

		// Grow the dataset after the export; restore must wipe the extras
		seedDataset(t, db)

		testutil.AssertNoError(t, svc.Restore(raw))

		var count int64
		db.Model(&models.Transaction{}).Count(&count)
		if count != 1 {
			t.Errorf("expected 1 transaction after restore, got %d", count)
		}
	})

	t.Run("malformed_json_fails_before_any_mutation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newBackupService(db)

		seedDataset(t, db)

		err := svc.Restore([]byte(`{"accounts": [`))
		testutil.AssertAppError(t, err, "MALFORMED_BACKUP")

		var count int64
		db.Model(&models.Transaction{}).Count(&count)
		if count != 1 {
			t.Errorf("expected dataset untouched, got %d transactions", count)
		}
	})

	t.Run("duplicate_id_aborts_whole_restore", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newBackupService(db)

		account, _, transaction := seedDataset(t, db)

		raw, err := svc.Export()
		testutil.AssertNoError(t, err)

		var doc BackupDocument
		testutil.AssertNoError(t, json.Unmarshal(raw, &doc))
		// Second transaction entry reusing an existing primary key
		dup := doc.Transactions[0]
		dup.Name = "Duplicate"
		doc.Transactions = append(doc.Transactions, dup)
		bad, err := json.MarshalIndent(&doc, "", "  ")
		testutil.AssertNoError(t, err)

		err = svc.Restore(bad)
		testutil.AssertAppError(t, err, "RESTORE_FAILED")

		// Prior dataset intact, not partially replaced
		var transactions []models.Transaction
		db.Find(&transactions)
		if len(transactions) != 1 || transactions[0].ID != transaction.ID || transactions[0].Name != transaction.Name {
			t.Errorf("expected prior dataset intact, got %+v", transactions)
		}
		var accounts []models.Account
		db.Find(&accounts)
		if len(accounts) != 1 || accounts[0].ID != account.ID {
			t.Errorf("expected prior accounts intact, got %+v", accounts)
		}
	})

	t.Run("rejects_unknown_enum_variants", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newBackupService(db)

		err := svc.Restore([]byte(`{
  "accounts": [{"id": 1, "name": "A", "account_name": "B", "amount": "0", "card_type": "crypto", "is_active": true, "color": ""}],
  "categories": [],
  "transactions": []
}`))
		testutil.AssertAppError(t, err, "INVALID_CARD_TYPE")
	})

	t.Run("missing_ids_rejected_before_mutation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newBackupService(db)

		seedDataset(t, db)

		err := svc.Restore([]byte(`{
  "accounts": [{"name": "A", "account_name": "B", "amount": "0", "card_type": "cash", "is_active": true, "color": ""}],
  "categories": [],
  "transactions": []
}`))
		testutil.AssertAppError(t, err, "MALFORMED_BACKUP")

		var count int64
		db.Model(&models.Account{}).Count(&count)
		if count != 1 {
			t.Errorf("expected dataset untouched, got %d accounts", count)
		}
	})
}
