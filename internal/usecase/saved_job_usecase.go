package usecase

import (
	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/model"
	"github.com/jobnexus/backend/internal/repository"
)

type SavedJobUsecase struct {
	savedJobRepo *repository.SavedJobRepository
	jobRepo      *repository.JobRepository
}

func NewSavedJobUsecase(savedJobRepo *repository.SavedJobRepository, jobRepo *repository.JobRepository) *SavedJobUsecase {
	return &SavedJobUsecase{savedJobRepo: savedJobRepo, jobRepo: jobRepo}
}

// Save is an idempotent no-op when the job is already saved.
func (uc *SavedJobUsecase) Save(userID, jobID uuid.UUID) error {
	if _, err := uc.jobRepo.FindByID(jobID); err != nil {
		return err
	}
	return uc.savedJobRepo.Save(userID, jobID)
}

// Unsave reports success whether or not the row existed.
func (uc *SavedJobUsecase) Unsave(userID, jobID uuid.UUID) error {
	_, err := uc.savedJobRepo.Unsave(userID, jobID)
	return err
}

// Toggle flips the saved state and returns the new state.
func (uc *SavedJobUsecase) Toggle(userID, jobID uuid.UUID) (bool, error) {
	if _, err := uc.jobRepo.FindByID(jobID); err != nil {
		return false, err
	}
	saved, err := uc.savedJobRepo.IsSaved(userID, jobID)
	if err != nil {
		return false, err
	}
	if saved {
		_, err := uc.savedJobRepo.Unsave(userID, jobID)
		return false, err
	}
	return true, uc.savedJobRepo.Save(userID, jobID)
}

func (uc *SavedJobUsecase) List(userID uuid.UUID) ([]model.SavedJob, error) {
	return uc.savedJobRepo.List(userID)
}
