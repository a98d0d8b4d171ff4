package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/voyagehub/internal/models"
	"github.com/sbilibin2017/voyagehub/internal/repositories"
	"github.com/sbilibin2017/voyagehub/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		username     string
		email        string
		password     string
		skipLookup   bool
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:     "successful registration",
			username: "alice",
			email:    "alice@example.com",
			password: "pass123",
		},
		{
			name:         "user already exists",
			username:     "bob",
			email:        "bob@example.com",
			password:     "pass123",
			existingUser: &models.UserDB{UserID: uuid.New()},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:       "missing fields",
			username:   "",
			email:      "eve@example.com",
			password:   "pass123",
			skipLookup: true,
			wantErr:    services.ErrMissingFields,
		},
		{
			name:      "reader error",
			username:  "eve",
			email:     "eve@example.com",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "concurrent duplicate hits unique index",
			username:  "carol",
			email:     "carol@example.com",
			password:  "pass123",
			writerErr: repositories.ErrUniqueViolation,
			wantErr:   services.ErrUserAlreadyExists,
		},
		{
			name:      "writer error",
			username:  "dave",
			email:     "dave@example.com",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)

			svc := services.NewAuthService(mockReader, mockWriter, nil, mockJWT)

			if !tt.skipLookup {
				mockReader.EXPECT().
					GetByUsernameOrEmail(gomock.Any(), &tt.username, &tt.email).
					Return(tt.existingUser, tt.readerErr)
			}

			if !tt.skipLookup && tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.username, tt.email, gomock.Any()).
					Return(tt.writerErr)
			}

			err := svc.Register(context.Background(), tt.username, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Register_StoresHashNotPlaintext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, nil, mockJWT)

	username := "alice"
	email := "alice@example.com"
	password := "secret123"

	mockReader.EXPECT().
		GetByUsernameOrEmail(gomock.Any(), &username, &email).
		Return(nil, nil)

	var storedHash string
	mockWriter.EXPECT().
		Save(gomock.Any(), username, email, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, passwordHash string) error {
			storedHash = passwordHash
			return nil
		})

	err := svc.Register(context.Background(), username, email, password)
	assert.NoError(t, err)

	assert.NotEqual(t, password, storedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)))
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := uuid.New()
	email := "alice@example.com"

	validUser := &models.UserDB{
		UserID:       userID,
		Username:     "alice",
		Email:        email,
		PasswordHash: string(hashed),
	}

	tests := []struct {
		name      string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		loginPass string
		wantToken string
		wantErr   error
	}{
		{
			name:      "successful login",
			user:      validUser,
			loginPass: password,
			wantToken: "token123",
		},
		{
			name:      "unknown email",
			user:      nil,
			loginPass: password,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "invalid password",
			user:      validUser,
			loginPass: "wrong",
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			readerErr: errors.New("db error"),
			loginPass: password,
			wantErr:   errors.New("db error"),
		},
		{
			name:      "jwt error",
			user:      validUser,
			loginPass: password,
			jwtErr:    errors.New("sign error"),
			wantErr:   errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)

			svc := services.NewAuthService(mockReader, mockWriter, nil, mockJWT)

			mockReader.EXPECT().
				GetByUsernameOrEmail(gomock.Any(), gomock.Nil(), &email).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.loginPass == password {
				mockJWT.EXPECT().
					Generate(gomock.Any(), userID, "alice").
					Return(tt.wantToken, tt.jwtErr)
			}

			token, user, err := svc.Login(context.Background(), email, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
				assert.Equal(t, tt.user, user)
			}
		})
	}
}

func TestAuthService_Login_UsesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	email := "alice@example.com"
	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     "alice",
		Email:        email,
		PasswordHash: string(hashed),
	}

	t.Run("cache hit skips repository", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		mockCache := services.NewMockUserCache(ctrl)
		mockJWT := services.NewMockJWTGenerator(ctrl)

		svc := services.NewAuthService(mockReader, mockWriter, mockCache, mockJWT)

		mockCache.EXPECT().GetByEmail(gomock.Any(), email).Return(user, nil)
		mockJWT.EXPECT().Generate(gomock.Any(), user.UserID, "alice").Return("token123", nil)

		token, got, err := svc.Login(context.Background(), email, password)
		assert.NoError(t, err)
		assert.Equal(t, "token123", token)
		assert.Equal(t, user, got)
	})

	t.Run("cache miss falls through and populates cache", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		mockCache := services.NewMockUserCache(ctrl)
		mockJWT := services.NewMockJWTGenerator(ctrl)

		svc := services.NewAuthService(mockReader, mockWriter, mockCache, mockJWT)

		mockCache.EXPECT().GetByEmail(gomock.Any(), email).Return(nil, nil)
		mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), gomock.Nil(), &email).Return(user, nil)
		mockCache.EXPECT().SetByEmail(gomock.Any(), user).Return(nil)
		mockJWT.EXPECT().Generate(gomock.Any(), user.UserID, "alice").Return("token123", nil)

		token, got, err := svc.Login(context.Background(), email, password)
		assert.NoError(t, err)
		assert.Equal(t, "token123", token)
		assert.Equal(t, user, got)
	})

	t.Run("cache failure does not fail login", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		mockCache := services.NewMockUserCache(ctrl)
		mockJWT := services.NewMockJWTGenerator(ctrl)

		svc := services.NewAuthService(mockReader, mockWriter, mockCache, mockJWT)

		mockCache.EXPECT().GetByEmail(gomock.Any(), email).Return(nil, errors.New("redis down"))
		mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), gomock.Nil(), &email).Return(user, nil)
		mockCache.EXPECT().SetByEmail(gomock.Any(), user).Return(errors.New("redis down"))
		mockJWT.EXPECT().Generate(gomock.Any(), user.UserID, "alice").Return("token123", nil)

		token, _, err := svc.Login(context.Background(), email, password)
		assert.NoError(t, err)
		assert.Equal(t, "token123", token)
	})
}
