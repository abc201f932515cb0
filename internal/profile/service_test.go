package profile_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/robgonnella/netscope/internal/exception"
	mock_profile "github.com/robgonnella/netscope/internal/mock/profile"
	"github.com/robgonnella/netscope/internal/profile"
	"github.com/stretchr/testify/assert"
)

func TestProfileService(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	mockRepo := mock_profile.NewMockRepo(ctrl)

	service := profile.NewProfileService(mockRepo)

	testProfile := &profile.Profile{
		ID:      "id",
		Name:    "office",
		Targets: []string{"10.0.0.1"},
	}

	t.Run("gets profile", func(st *testing.T) {
		mockRepo.EXPECT().Get("id").Return(testProfile, nil)

		found, err := service.Get("id")

		assert.NoError(st, err)
		assert.Equal(st, testProfile, found)
	})

	t.Run("gets all profiles", func(st *testing.T) {
		expected := []*profile.Profile{testProfile}

		mockRepo.EXPECT().GetAll().Return(expected, nil)

		found, err := service.GetAll()

		assert.NoError(st, err)
		assert.Equal(st, expected, found)
	})

	t.Run("finds profile by name", func(st *testing.T) {
		mockRepo.EXPECT().GetByName("office").Return(testProfile, nil)

		found, err := service.Find("office")

		assert.NoError(st, err)
		assert.Equal(st, testProfile, found)
	})

	t.Run("finds profile by id when name does not match", func(st *testing.T) {
		mockRepo.EXPECT().GetByName("id").Return(nil, exception.ErrRecordNotFound)
		mockRepo.EXPECT().Get("id").Return(testProfile, nil)

		found, err := service.Find("id")

		assert.NoError(st, err)
		assert.Equal(st, testProfile, found)
	})

	t.Run("creates profile", func(st *testing.T) {
		mockRepo.EXPECT().Create(testProfile).Return(testProfile, nil)

		created, err := service.Create(testProfile)

		assert.NoError(st, err)
		assert.Equal(st, testProfile, created)
	})

	t.Run("drops blank targets on create", func(st *testing.T) {
		p := &profile.Profile{Name: " lab ", Targets: []string{"", " 10.1.1.1 ", "  "}}

		mockRepo.EXPECT().Create(p).Return(p, nil)

		created, err := service.Create(p)

		assert.NoError(st, err)
		assert.Equal(st, "lab", created.Name)
		assert.Equal(st, []string{"10.1.1.1"}, created.Targets)
	})

	t.Run("rejects profile without targets", func(st *testing.T) {
		_, err := service.Create(&profile.Profile{Name: "empty", Targets: []string{" "}})

		assert.ErrorIs(st, err, exception.ErrInvalidInput)
	})

	t.Run("updates profile", func(st *testing.T) {
		mockRepo.EXPECT().Update(testProfile).Return(testProfile, nil)

		updated, err := service.Update(testProfile)

		assert.NoError(st, err)
		assert.Equal(st, testProfile, updated)
	})

	t.Run("deletes profile by name", func(st *testing.T) {
		mockRepo.EXPECT().GetByName("office").Return(testProfile, nil)
		mockRepo.EXPECT().Delete("id").Return(nil)

		err := service.Delete("office")

		assert.NoError(st, err)
	})

	t.Run("returns not found when deleting unknown profile", func(st *testing.T) {
		mockRepo.EXPECT().GetByName("nope").Return(nil, exception.ErrRecordNotFound)
		mockRepo.EXPECT().Get("nope").Return(nil, exception.ErrRecordNotFound)

		err := service.Delete("nope")

		assert.ErrorIs(st, err, exception.ErrRecordNotFound)
	})
}
