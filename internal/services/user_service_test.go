package services

import (
	"testing"

	"advisor/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("new@test.com", "password123", "Ada", "Lovelace")
		testutil.AssertNoError(t, err)

		if user.ID == "" {
			t.Fatal("expected non-empty user ID")
		}
		if user.Email != "new@test.com" {
			t.Errorf("expected email new@test.com, got %s", user.Email)
		}
		if user.Password == "password123" {
			t.Error("password should be stored hashed")
		}
		if !user.IsActive {
			t.Error("new users should be active")
		}
	})

	t.Run("normalizes_email_case", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("MiXeD@Test.COM", "password123", "", "")
		testutil.AssertNoError(t, err)

		if user.Email != "mixed@test.com" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("dup@test.com", "password123", "", "")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("dup@test.com", "different456", "", "")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("", "password123", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateUser("nopass@test.com", "", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created := testutil.CreateTestUserWithEmail(t, db, "lookup@test.com")

		user, err := svc.GetUserByEmail("lookup@test.com")
		testutil.AssertNoError(t, err)
		if user.ID != created.ID {
			t.Errorf("expected user %s, got %s", created.ID, user.ID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.GetUserByEmail("missing@test.com")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})

	t.Run("inactive_user_hidden", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user := testutil.CreateTestUserWithEmail(t, db, "inactive@test.com")
		if err := db.Model(user).Update("is_active", false).Error; err != nil {
			t.Fatalf("failed to deactivate user: %v", err)
		}

		_, err := svc.GetUserByEmail("inactive@test.com")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestGetUserByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	created := testutil.CreateTestUser(t, db)

	user, err := svc.GetUserByID(created.ID)
	testutil.AssertNoError(t, err)
	if user.Email != created.Email {
		t.Errorf("expected email %s, got %s", created.Email, user.Email)
	}

	_, err = svc.GetUserByID("00000000-0000-0000-0000-000000000000")
	testutil.AssertAppError(t, err, "USER_NOT_FOUND")
}

func TestVerifyPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	// Fixture users are created with "password123".
	user := testutil.CreateTestUser(t, db)

	if !svc.VerifyPassword(user, "password123") {
		t.Error("expected correct password to verify")
	}
	if svc.VerifyPassword(user, "wrongpassword") {
		t.Error("expected wrong password to fail")
	}
}

func TestRecordLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	user := testutil.CreateTestUser(t, db)
	if user.LastLoginAt != nil {
		t.Fatal("expected no login time on a fresh user")
	}

	testutil.AssertNoError(t, svc.RecordLogin(user.ID))

	updated, err := svc.GetUserByID(user.ID)
	testutil.AssertNoError(t, err)
	if updated.LastLoginAt == nil {
		t.Error("expected last_login_at to be set after RecordLogin")
	}
}
