package auth

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"foodmarket/config"
	domainerrors "foodmarket/internal/domain/errors"
	"foodmarket/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores input beyond 72 bytes.
const bcryptMaxPasswordBytes = 72

var forbiddenPasswordWords = []string{"password", "admin", "qwerty", "letmein"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// Cost and strength rules come from the auth and passwordStrength config sections.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	h := newBcryptHasherWithCost(bcrypt.DefaultCost)
	if cfg == nil {
		return h
	}
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		h.cost = cfg.Auth.BcryptCost
	}
	if cfg.PasswordStrength != nil {
		h.strength = *cfg.PasswordStrength
	}

	return h
}

func newBcryptHasherWithCost(cost int) *bcryptHasher {
	return &bcryptHasher{
		cost: cost,
		strength: config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        bcryptMaxPasswordBytes,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
		},
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength checks a password against the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	rules := h.strength

	if rules.MinLength > 0 && utf8.RuneCountInString(password) < rules.MinLength {
		return domainerrors.ErrPasswordStrength.WithDetails("must be at least " + strconv.Itoa(rules.MinLength) + " characters long")
	}
	maxBytes := rules.MaxLength
	if maxBytes <= 0 || maxBytes > bcryptMaxPasswordBytes {
		maxBytes = bcryptMaxPasswordBytes
	}
	if len(password) > maxBytes {
		return domainerrors.ErrPasswordStrength.WithDetails("must be at most " + strconv.Itoa(maxBytes) + " bytes long")
	}
	if rules.RequireLowercase && !hasRune(password, unicode.IsLower) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one lowercase letter")
	}
	if rules.RequireUppercase && !hasRune(password, unicode.IsUpper) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one uppercase letter")
	}
	if rules.RequireNumbers && !hasRune(password, unicode.IsDigit) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one number")
	}
	if rules.RequireSpecial && !hasRune(password, isSpecial) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one special character")
	}
	if containsForbiddenWords(password, forbiddenPasswordWords) {
		return domainerrors.ErrPasswordStrength.WithDetails("contains forbidden words")
	}

	return nil
}

func hasRune(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if pred(r) {
			return true
		}
	}

	return false
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func containsForbiddenWords(password string, words []string) bool {
	lower := strings.ToLower(password)
	for _, word := range words {
		if strings.Contains(lower, word) {
			return true
		}
	}

	return false
}
