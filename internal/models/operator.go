package models

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"badgeofshame/internal/db"
	"badgeofshame/internal/errmsg"
	"badgeofshame/internal/utils"

	sj "github.com/brianvoe/sjwt"
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 30 * 24 * time.Hour

var jwtSecret []byte

var errInvalidToken = errors.New("invalid token")

// SetJWTSecret sets the key used to sign and verify operator tokens.
func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

// Operator is an account allowed to use the /_badge admin routes.
type Operator struct {
	Username string `json:"username" bson:"username"`
	Password string `json:"password,omitempty" bson:"password"`
}

func (o *Operator) GenToken() string {
	claims, _ := sj.ToClaims(Operator{Username: o.Username})
	claims.SetExpiresAt(time.Now().Add(tokenLifetime))

	return claims.Generate(jwtSecret)
}

func (o *Operator) ParseToken(token string) error {
	if len(jwtSecret) == 0 || !sj.Verify(token, jwtSecret) {
		return errInvalidToken
	}

	claims, err := sj.Parse(token)
	if err != nil {
		return err
	}
	if err := claims.Validate(); err != nil {
		return err
	}

	return claims.ToStruct(o)
}

// HashPassword returns the bcrypt hash stored for an operator.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash.
func (o *Operator) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(o.Password), []byte(password)) == nil
}

func (o *Operator) Get(username string) errmsg.StatusError {
	if db.Operators == nil {
		return errmsg.OperatorsUnavailable
	}

	err := db.Operators.FindOne(db.Ctx, bson.M{
		"username": username,
	}).Decode(o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return errmsg.OperatorNotExists
	}
	if err != nil {
		return errmsg.InternalServerError(err)
	}

	if o.Password == "" {
		return errmsg.OperatorNotExists
	}

	return errmsg.EmptyStatusError
}

// Save upserts the operator keyed by username.
func (o *Operator) Save() error {
	if db.Operators == nil {
		return errors.New(errmsg.OperatorsUnavailable.Message)
	}

	_, err := db.Operators.UpdateOne(
		db.Ctx,
		bson.M{"username": o.Username},
		bson.M{"$set": bson.M{"username": o.Username, "password": o.Password}},
		options.Update().SetUpsert(true),
	)

	return err
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(c fiber.Ctx) string {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if !strings.HasPrefix(authHeader, "Bearer") {
		return ""
	}

	tokens := strings.Fields(authHeader)
	if len(tokens) != 2 {
		return ""
	}

	return tokens[1]
}

func OperatorMiddleware(c fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return utils.StatusError(c, errmsg.OperatorNoToken)
	}

	var operator Operator
	if err := operator.ParseToken(token); err != nil || operator.Username == "" {
		return utils.Error(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}

	utils.SetLocals(c, "operator", operator)

	return c.Next()
}
