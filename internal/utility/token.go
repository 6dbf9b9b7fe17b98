package utility

import (
	"log"
	"os"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
)

// SignedDetails are the claims carried by a user token.
type SignedDetails struct {
	Email     string
	FirstName string
	LastName  string
	Uid       string
	jwt.StandardClaims
}

// AdminDetails are the claims carried by an admin token, signed with a
// separate secret so a user token can never pass the admin check.
type AdminDetails struct {
	Email string
	Uid   string
	jwt.StandardClaims
}

// Secrets are read per call so that .env loading in main, which happens after
// package init, is still honored.
func secretKey() []byte { return []byte(os.Getenv("JWT_SECRET_KEY")) }

func adminSecretKey() []byte { return []byte(os.Getenv("ADMIN_SECRET_KEY")) }

// GenerateAllTokens returns a 24h access token and a 168h refresh token.
func GenerateAllTokens(email string, firstName string, lastName string, uid string) (string, string, error) {
	claims := &SignedDetails{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Uid:       uid,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour * 24).Unix(),
		},
	}

	refreshClaims := &SignedDetails{
		Uid: uid,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour * 168).Unix(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey())
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return "", "", err
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(secretKey())
	if err != nil {
		log.Printf("Error generating refresh token: %v", err)
		return "", "", err
	}

	return token, refreshToken, nil
}

func GenerateAdminToken(email string, uid string) (string, error) {
	claims := &AdminDetails{
		Email: email,
		Uid:   uid,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour * 24).Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(adminSecretKey())
}

// ValidateToken checks a user token and returns its claims; the second return
// is a human-readable error message, empty on success.
func ValidateToken(signedToken string) (*SignedDetails, string) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(token *jwt.Token) (interface{}, error) {
			return secretKey(), nil
		},
	)
	if err != nil {
		return nil, err.Error()
	}

	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return nil, "the token is invalid"
	}
	if claims.ExpiresAt < time.Now().Unix() {
		return nil, "token is expired"
	}
	return claims, ""
}

func ValidateAdminToken(signedToken string) (*AdminDetails, string) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&AdminDetails{},
		func(token *jwt.Token) (interface{}, error) {
			return adminSecretKey(), nil
		},
	)
	if err != nil {
		return nil, err.Error()
	}

	claims, ok := token.Claims.(*AdminDetails)
	if !ok || !token.Valid {
		return nil, "the token is invalid"
	}
	if claims.ExpiresAt < time.Now().Unix() {
		return nil, "token is expired"
	}
	return claims, ""
}
