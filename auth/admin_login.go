package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/chinmaye5/Freelance-ecommerce/models"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

var firebaseAuth *fbauth.Client

// InitFirebase wires up the Firebase Admin SDK from FIREBASE_CREDENTIALS_JSON
// and FIREBASE_PROJECT_ID. Called once from main; login requests fail with
// 503 until it has run.
func InitFirebase(ctx context.Context) error {
	credsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
	if credsJSON == "" {
		return errors.New("FIREBASE_CREDENTIALS_JSON must be set")
	}
	projectID := os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		return errors.New("FIREBASE_PROJECT_ID must be set")
	}

	app, err := firebase.NewApp(ctx,
		&firebase.Config{ProjectID: projectID},
		option.WithCredentialsJSON([]byte(credsJSON)))
	if err != nil {
		return err
	}

	firebaseAuth, err = app.Auth(ctx)
	return err
}

// GoogleAdminLoginHandler signs an admin in with a Google ID token. The
// token is verified with Firebase, the verified email is run through the
// authorization gate, and on success we issue our own JWT carrying email
// and role. Unknown emails get 401; they are not registered as pending.
func GoogleAdminLoginHandler(w http.ResponseWriter, r *http.Request, db *gorm.DB) {
	if firebaseAuth == nil {
		http.Error(w, "Login is not available", http.StatusServiceUnavailable)
		return
	}

	var req struct {
		IDToken string `json:"idToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IDToken == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	token, err := firebaseAuth.VerifyIDToken(r.Context(), req.IDToken)
	if err != nil {
		log.Printf("❌ ID token verification failed: %v", err)
		http.Error(w, "Invalid ID token", http.StatusUnauthorized)
		return
	}

	email, ok := token.Claims["email"].(string)
	if !ok || email == "" {
		http.Error(w, "Email not found in token", http.StatusUnauthorized)
		return
	}
	name, _ := token.Claims["name"].(string)
	picture, _ := token.Claims["picture"].(string)

	role, err := AuthorizeAdmin(db, email)
	if errors.Is(err, ErrUnauthorized) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	} else if err != nil {
		log.Printf("❌ Admin lookup failed: %v", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	// Keep the roster's profile fields fresh for the admin UI.
	if role == RoleAdmin {
		if err := db.Model(&models.Admin{}).Where("email = ?", email).
			Updates(models.Admin{Name: name, Picture: picture}).Error; err != nil {
			log.Printf("❌ Failed to update admin profile: %v", err)
		}
	}

	jwtStr, err := generateJWT(email, role)
	if err != nil {
		log.Printf("❌ Failed to sign JWT: %v", err)
		http.Error(w, "Failed to issue token", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token":   jwtStr,
		"role":    role,
		"email":   email,
		"name":    name,
		"picture": picture,
	})
}

func generateJWT(email, role string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"role":  role,
		"exp":   time.Now().AddDate(0, 2, 0).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("❌ Failed to write JSON response: %v", err)
	}
}
