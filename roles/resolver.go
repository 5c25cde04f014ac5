// Package roles resolves a user's role from an ordered list of sources:
// hardcoded email overrides, then the user_roles table, then the profiles
// table, then the parent default. The first source that yields a role wins.
package roles

import (
	"errors"
	"log"

	"school-catering-api/models"

	"gorm.io/gorm"
)

// Strategy is one resolution source. It reports (role, found). A source
// that cannot answer returns found=false so the next one is consulted.
type Strategy func(userID uint, email string) (models.UserRole, bool, error)

type Resolver struct {
	db           *gorm.DB
	adminEmail   string
	cashierEmail string
}

func NewResolver(db *gorm.DB, adminEmail, cashierEmail string) *Resolver {
	return &Resolver{db: db, adminEmail: adminEmail, cashierEmail: cashierEmail}
}

// Resolve determines the caller's role and writes it back to both role
// stores. The write-back and the profiles mirror are best-effort: failures
// are logged and never surfaced, so callers must not assume persistence
// completed. Callers re-issue the session token with the returned role to
// refresh claims.
//
// If a lookup fails, the resolver falls back to the email overrides and
// finally to parent — it never returns an error.
func (r *Resolver) Resolve(userID uint, email string) models.UserRole {
	role, err := r.lookup(userID, email)
	if err != nil {
		log.Printf("roles: lookup failed for user %d: %v", userID, err)
		if override, ok := r.overrideFor(email); ok {
			r.persist(userID, override)
			return override
		}
		return models.RoleParent
	}
	r.persist(userID, role)
	return role
}

func (r *Resolver) lookup(userID uint, email string) (models.UserRole, error) {
	for _, s := range r.strategies() {
		role, found, err := s(userID, email)
		if err != nil {
			return "", err
		}
		if found {
			return role, nil
		}
	}
	return models.RoleParent, nil
}

func (r *Resolver) strategies() []Strategy {
	return []Strategy{
		r.emailOverride,
		r.userRolesLookup,
		r.profilesLookup,
		defaultRole,
	}
}

func (r *Resolver) overrideFor(email string) (models.UserRole, bool) {
	switch {
	case email != "" && email == r.adminEmail:
		return models.RoleAdmin, true
	case email != "" && email == r.cashierEmail:
		return models.RoleCashier, true
	}
	return "", false
}

func (r *Resolver) emailOverride(_ uint, email string) (models.UserRole, bool, error) {
	role, ok := r.overrideFor(email)
	return role, ok, nil
}

func (r *Resolver) userRolesLookup(userID uint, _ string) (models.UserRole, bool, error) {
	var record models.UserRoleRecord
	err := r.db.Where("user_id = ?", userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if record.Role == "" {
		return "", false, nil
	}
	return record.Role, true, nil
}

// profilesLookup is only reached when user_roles had nothing for the user.
func (r *Resolver) profilesLookup(userID uint, _ string) (models.UserRole, bool, error) {
	var profile models.Profile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if profile.Role == "" {
		return "", false, nil
	}
	return profile.Role, true, nil
}

func defaultRole(uint, string) (models.UserRole, bool, error) {
	return models.RoleParent, true, nil
}

// persist upserts the user_roles record and mirrors the role onto the
// profile. profiles.role is a lagging mirror kept for external readers —
// user_roles stays the source of truth.
func (r *Resolver) persist(userID uint, role models.UserRole) {
	var existing models.UserRoleRecord
	err := r.db.Where("user_id = ?", userID).First(&existing).Error
	switch {
	case err == nil:
		if err := r.db.Model(&existing).Update("role", role).Error; err != nil {
			log.Printf("roles: failed to update user_roles for user %d: %v", userID, err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := r.db.Create(&models.UserRoleRecord{UserID: userID, Role: role}).Error; err != nil {
			log.Printf("roles: failed to insert user_roles for user %d: %v", userID, err)
		}
	default:
		log.Printf("roles: failed to read user_roles for user %d: %v", userID, err)
	}

	if err := r.db.Model(&models.Profile{}).Where("user_id = ?", userID).
		Update("role", role).Error; err != nil {
		log.Printf("roles: failed to mirror role onto profile for user %d: %v", userID, err)
	}
}
