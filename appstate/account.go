package appstate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"foodrun/authtoken"
	"foodrun/ordercalc"
)

func (s *State) SignIn(ctx context.Context, email, password string) error {
	if err := s.accounts.SignIn(ctx, email, password); err != nil {
		s.authFailed("Sign In", err)
		return fmt.Errorf("failed to sign in: %w", err)
	}
	s.update(func(v *View) { v.ErrorMessage = "" })
	return s.bindUser()
}

// SignUp creates the account and, once signed in, uploads the selected
// profile picture if there is one. A failed upload does not fail the sign-up.
func (s *State) SignUp(ctx context.Context, name, email, password string) error {
	if err := s.accounts.SignUp(ctx, name, email, password); err != nil {
		s.authFailed("Sign Up", err)
		return fmt.Errorf("failed to sign up: %w", err)
	}
	s.update(func(v *View) { v.ErrorMessage = "" })
	if err := s.bindUser(); err != nil {
		return err
	}

	image := s.View().SelectedImage
	userID := s.accounts.CurrentUserID()
	if image == nil || userID == "" {
		return nil
	}
	if err := s.uploadPicture(ctx, userID, *image); err != nil {
		log.Printf("ERROR: profile picture upload after sign up failed: %v", err)
	}
	return nil
}

func (s *State) authFailed(op string, err error) {
	var authErr *authtoken.AuthError
	isAuth := errors.As(err, &authErr)
	if !isAuth {
		log.Printf("ERROR: %s: %v", op, err)
	}
	s.update(func(v *View) {
		if isAuth {
			v.Auth = InvalidAuthentication
		}
		v.ErrorMessage = authtoken.AuthMessage(err)
	})
}

// SignOut drops everything that belongs to the signed-in user. The selected
// image and profile picture stay until ClearImages. The session is ended
// whenever the account service holds one, even if no user snapshot has
// arrived yet.
func (s *State) SignOut(ctx context.Context) error {
	hasSession := s.accounts.HasUser()

	s.mu.Lock()
	s.unbindUserLocked()
	s.restaurantQuery = ""
	s.orderQuery = ""
	s.updateLocked(func(v *View) {
		v.Auth = Unauthenticated
		v.UserID = ""
		v.UserName = ""
		v.UserEmail = ""
		v.SelectedRestaurant = nil
		v.CurrentOrder = nil
		v.Orders = nil
		v.WeeklySpending = make([]float64, ordercalc.WeekDays)
		v.SelectedDate = time.Time{}
		v.SelectedDateOrderCount = 0
		v.SelectedDateTotalCost = 0
	})
	s.mu.Unlock()

	if !hasSession {
		return nil
	}
	if err := s.accounts.SignOut(ctx); err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}
	return nil
}

func (s *State) SelectImage(image Image) {
	s.update(func(v *View) {
		v.SelectedImage = &Image{Data: append([]byte(nil), image.Data...), ContentType: image.ContentType}
	})
}

func (s *State) ClearImages() {
	s.update(func(v *View) {
		v.ProfilePictureURL = ""
		v.SelectedImage = nil
	})
}

func (s *State) UpdateProfilePicture(ctx context.Context, image Image) error {
	userID := s.accounts.CurrentUserID()
	if userID == "" {
		return ErrNotSignedIn
	}
	return s.uploadPicture(ctx, userID, image)
}

func (s *State) uploadPicture(ctx context.Context, userID string, image Image) error {
	url, err := s.storage.UploadUserProfilePicture(ctx, userID, bytes.NewReader(image.Data), image.ContentType)
	if err != nil {
		return fmt.Errorf("failed to upload profile picture: %w", err)
	}
	s.update(func(v *View) { v.ProfilePictureURL = url })
	return nil
}
