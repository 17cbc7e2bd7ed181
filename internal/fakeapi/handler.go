package fakeapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/internal/utils"
	"github.com/MKhiriev/go-auth-form/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Response texts.
const (
	MsgRegistered         = "Пользователь успешно зарегистрирован"
	MsgLoggedIn           = "Вход выполнен успешно"
	MsgAllFieldsRequired  = "Все поля обязательны"
	MsgUserExists         = "Пользователь уже существует"
	MsgInvalidCredentials = "Неверный email или пароль"
	MsgInvalidJSON        = "Некорректный JSON"
)

// Options configures a fake API handler.
type Options struct {
	// SignKey signs issued JWTs. Empty means a random key per handler.
	SignKey []byte
	// TokenTTL is the lifetime of issued tokens; zero means one hour.
	TokenTTL time.Duration
	// BcryptCost defaults to bcrypt.MinCost.
	BcryptCost int
	// TokenInHeader sends the login token in the Authorization header
	// instead of the body.
	TokenInHeader bool
}

type Handler struct {
	users         *userStore
	tokens        tokenIssuer
	tokenInHeader bool

	logger *logger.Logger
}

func NewHandler(opts Options, logger *logger.Logger) *Handler {
	if len(opts.SignKey) == 0 {
		opts.SignKey = []byte(uuid.NewString())
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = time.Hour
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.MinCost
	}

	logger.Info().Dur("token_ttl", opts.TokenTTL).Msg("fake auth handler created")
	return &Handler{
		users:         newUserStore(opts.BcryptCost),
		tokens:        tokenIssuer{signKey: opts.SignKey, ttl: opts.TokenTTL, now: time.Now},
		tokenInHeader: opts.TokenInHeader,
		logger:        logger,
	}
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	creds.Name = strings.TrimSpace(creds.Name)
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Name == "" || creds.Email == "" || creds.Password == "" {
		writeError(w, MsgAllFieldsRequired, http.StatusBadRequest)
		return
	}

	if err := h.users.create(creds.Name, creds.Email, creds.Password); err != nil {
		if errors.Is(err, ErrUserExists) {
			log.Info().Str("email", creds.Email).Msg("user already exists")
			writeError(w, MsgUserExists, http.StatusConflict)
			return
		}
		log.Err(err).Msg("user creation failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	token, err := h.tokens.issue(account{name: creds.Name, email: creds.Email})
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Info().Str("email", creds.Email).Msg("user registered")
	_, _ = utils.WriteJSON(w, models.AuthResponse{Message: MsgRegistered, Token: token}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		writeError(w, MsgAllFieldsRequired, http.StatusBadRequest)
		return
	}

	acc, err := h.users.verify(creds.Email, creds.Password)
	if err != nil {
		log.Info().Str("email", creds.Email).Msg("invalid login/password")
		writeError(w, MsgInvalidCredentials, http.StatusUnauthorized)
		return
	}

	token, err := h.tokens.issue(acc)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := models.AuthResponse{Message: MsgLoggedIn}
	if h.tokenInHeader {
		w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token))
	} else {
		resp.Token = token
	}

	log.Info().Str("email", acc.email).Msg("user logged in")
	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

func writeError(w http.ResponseWriter, text string, status int) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: text}, status)
}
