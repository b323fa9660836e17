package service

import (
	"errors"
	"testing"

	"github.com/rslist/backend/internal/dto"
	"github.com/rslist/backend/internal/model"
)

func TestRegisterGrantsVoteBudget(t *testing.T) {
	store := newFakeStore()
	userService := newUserService(newFakeRepositories(store))

	user, err := userService.Register(dto.UserRequest{UserName: "xiaoli", Gender: "female", Age: 19, Phone: "18888888888", Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if user.VoteBudget != defaultVoteBudget {
		t.Errorf("vote budget: expected %d, got %d", defaultVoteBudget, user.VoteBudget)
	}
	if user.ID == 0 {
		t.Errorf("expected generated id")
	}
}

func TestDeleteUserCascadesEvents(t *testing.T) {
	store := newFakeStore()
	owner := store.addUser(model.User{UserName: "xiaoli", Email: "a@b.com"})
	other := store.addUser(model.User{UserName: "laowang", Email: "c@d.com"})
	store.addEvent(model.Event{EventName: "owned", Rank: 1, UserID: owner.ID})
	store.addEvent(model.Event{EventName: "owned too", Rank: 2, UserID: owner.ID})
	kept := store.addEvent(model.Event{EventName: "kept", Rank: 3, UserID: other.ID})
	userService := newUserService(newFakeRepositories(store))

	if err := userService.Delete(owner.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, ok := store.users[owner.ID]; ok {
		t.Errorf("user not deleted")
	}
	if len(store.events) != 1 {
		t.Fatalf("expected 1 remaining event, got %d", len(store.events))
	}
	if _, ok := store.events[kept.ID]; !ok {
		t.Errorf("unrelated event deleted")
	}
}

func TestDeleteMissingUser(t *testing.T) {
	store := newFakeStore()
	userService := newUserService(newFakeRepositories(store))

	if err := userService.Delete(42); !errors.Is(err, dto.ErrUserNotFound) {
		t.Fatalf("expected %v, got %v", dto.ErrUserNotFound, err)
	}
}

func TestGetUserByID(t *testing.T) {
	store := newFakeStore()
	user := store.addUser(model.User{UserName: "xiaoli", Email: "a@b.com", VoteBudget: 10})
	userService := newUserService(newFakeRepositories(store))

	got, err := userService.GetByID(user.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.UserName != "xiaoli" {
		t.Errorf("unexpected user: %+v", got)
	}

	if _, err := userService.GetByID(user.ID + 1); !errors.Is(err, dto.ErrUserNotFound) {
		t.Errorf("expected %v, got %v", dto.ErrUserNotFound, err)
	}
}
