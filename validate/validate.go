package validate

import (
	"fmt"
	L "pholio/logger"
	"path/filepath"
	"regexp"
	"strings"
)

// Client-side checks, applied before any network call so a bad input
// never reaches the gateway.

const MaxPhotoSizeBytes = 10 * 1024 * 1024

var acceptedPhotoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
var folderNamePattern = regexp.MustCompile(`^[a-zA-Z0-9\s_-]+$`)

func Login(username string, password string) error {
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if len(username) < 3 {
		return fmt.Errorf("username must be at least 3 characters")
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}

func Register(username string, email string, password string, passwordConfirm string) error {
	if err := Login(username, password); err != nil {
		return err
	}
	if !usernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters, numbers, and underscores")
	}
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%s is not a valid email address", email)
	}
	hasLower := strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' })
	hasUpper := strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' })
	hasDigit := strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' })
	if !hasLower || !hasUpper || !hasDigit {
		return fmt.Errorf("password must contain at least one uppercase letter, one lowercase letter, and one number")
	}
	if passwordConfirm == "" {
		return fmt.Errorf("password confirmation is required")
	}
	if password != passwordConfirm {
		return fmt.Errorf("passwords do not match")
	}
	return nil
}

func FolderName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("folder name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("folder name cannot exceed 100 characters")
	}
	if !folderNamePattern.MatchString(name) {
		return fmt.Errorf("folder name can only contain letters, numbers, spaces, hyphens, and underscores")
	}
	return nil
}

func PhotoUpload(filename string, sizeInBytes uint64) error {
	if strings.TrimSpace(filename) == "" {
		return fmt.Errorf("file must have a name")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !acceptedPhotoExtensions[ext] {
		return fmt.Errorf("only JPEG, PNG, GIF, and WebP images are allowed, got: %s", filename)
	}
	if sizeInBytes > MaxPhotoSizeBytes {
		return fmt.Errorf("file size must be less than %s, got: %s",
			L.HumanReadableBytes(MaxPhotoSizeBytes, 0),
			L.HumanReadableBytes(sizeInBytes, 1))
	}
	return nil
}
