package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	domainuser "github.com/avelar/taskhub/internal/domain/user"
	"github.com/avelar/taskhub/internal/mocks"
	authsvc "github.com/avelar/taskhub/internal/service/auth"
	"github.com/avelar/taskhub/internal/transport/auth"
)

func init() { gin.SetMode(gin.TestMode) }

func newRouter(t *testing.T) (*gin.Engine, *mocks.MockUserRepository, *mocks.MockTokenManager) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	tokens := mocks.NewMockTokenManager(ctrl)

	r := gin.New()
	auth.Register(r.Group("/auth"), authsvc.NewService(users, tokens))
	return r, users, tokens
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)
	return rec
}

func TestSignUp(t *testing.T) {
	r, users, tokens := newRouter(t)

	users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").
		Return(domainuser.User{}, domainuser.ErrNotFound)
	users.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, u domainuser.User) (domainuser.User, error) { return u, nil })
	tokens.EXPECT().Issue(gomock.Any()).Return("signed-token", nil)

	rec := post(r, "/auth/signup", `{"name":"Ana","email":"ana@example.com","password":"hunter2222"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"signed-token"`)
}

func TestSignUpValidation(t *testing.T) {
	r, _, _ := newRouter(t)

	// Short password never reaches the service.
	rec := post(r, "/auth/signup", `{"name":"Ana","email":"ana@example.com","password":"short"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(r, "/auth/signup", `{"name":"Ana","email":"not-an-email","password":"hunter2222"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignUpEmailTaken(t *testing.T) {
	r, users, _ := newRouter(t)

	users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").
		Return(domainuser.User{ID: uuid.New()}, nil)

	rec := post(r, "/auth/signup", `{"name":"Ana","email":"ana@example.com","password":"hunter2222"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin(t *testing.T) {
	r, users, tokens := newRouter(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2222"), bcrypt.MinCost)
	require.NoError(t, err)
	userID := uuid.New()
	users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").
		Return(domainuser.User{ID: userID, PasswordHash: string(hash)}, nil)
	tokens.EXPECT().Issue(userID).Return("signed-token", nil)

	rec := post(r, "/auth/login", `{"email":"ana@example.com","password":"hunter2222"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"signed-token"`)
}

func TestLoginBadCredentials(t *testing.T) {
	r, users, _ := newRouter(t)

	users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").
		Return(domainuser.User{}, domainuser.ErrNotFound)

	rec := post(r, "/auth/login", `{"email":"ana@example.com","password":"whatever"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid email or password")
}

func TestRequiredMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := mocks.NewMockTokenManager(ctrl)
	userID := uuid.New()
	tokens.EXPECT().Verify("good").Return(userID, nil)
	tokens.EXPECT().Verify("bad").Return(uuid.Nil, authsvc.ErrInvalidCredentials)

	r := gin.New()
	r.GET("/whoami", auth.Required(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": auth.UserID(c)})
	})

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"valid", "Bearer good", http.StatusOK},
		{"invalid token", "Bearer bad", http.StatusUnauthorized},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code)
			if tc.want == http.StatusOK {
				assert.Contains(t, rec.Body.String(), userID.String())
			}
		})
	}
}
