package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/prajwalb/sameeksha/internal/apperror"
	"github.com/prajwalb/sameeksha/internal/dto"
	"github.com/prajwalb/sameeksha/internal/model"
	"github.com/prajwalb/sameeksha/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ResponseService owns the draft/submission lifecycle: at most one draft per
// user, drafts transition to submitted responses only, submitted responses are
// immutable except for administrative deletion.
type ResponseService interface {
	SubmitResponse(userID uint, req dto.SaveResponseRequest) (*dto.ResponseDTO, error)
	SaveDraft(userID uint, req dto.SaveResponseRequest) (*dto.ResponseDTO, error)
	GetDraft(userID uint) (*dto.ResponseDTO, error)
	GetAllResponses(userID uint) ([]dto.ResponseDTO, error)
	GetResponseByID(requesterID uint, role string, id uint) (*dto.ResponseDTO, error)
	DeleteResponse(requesterID uint, role string, id uint) error
	GetAllResponsesAdmin() ([]dto.ResponseDTO, error)
	// CleanupDuplicateDrafts collapses any multiple-draft state for one user
	// down to the most recently saved draft. Returns the retained draft (nil
	// if the user had none) and how many strays were removed.
	CleanupDuplicateDrafts(userID uint) (*model.Response, int, error)
	CleanupAllDuplicateDrafts() (*dto.CleanupReportDTO, error)
}

type responseService struct {
	responseRepo repository.ResponseRepository
}

func NewResponseService(responseRepo repository.ResponseRepository) ResponseService {
	return &responseService{responseRepo: responseRepo}
}

func (s *responseService) SubmitResponse(userID uint, req dto.SaveResponseRequest) (*dto.ResponseDTO, error) {
	if err := validateAnswers(req.Answers); err != nil {
		return nil, err
	}

	now := time.Now()
	response := model.Response{
		UserID:        userID,
		ResponseID:    req.ResponseID,
		Status:        model.StatusSubmitted,
		Answers:       req.Answers,
		SchemaVersion: model.AnswersSchemaVersion,
		SubmittedAt:   &now,
		LastSavedAt:   now,
	}
	if err := s.responseRepo.Create(&response); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("SubmitResponse: failed to create response")
		return nil, apperror.Store(err)
	}

	// The submitted answers supersede whatever the user had parked as a draft.
	if cleaned, err := s.clearDrafts(userID); err != nil {
		log.Warn().Err(err).Uint("userID", userID).Msg("SubmitResponse: failed to clear draft after submit")
	} else if cleaned > 0 {
		log.Debug().Uint("userID", userID).Int("cleared", cleaned).Msg("SubmitResponse: draft cleared")
	}

	log.Info().Uint("userID", userID).Uint("responseID", response.ID).Msg("Response submitted")
	result := toResponseDTO(&response)
	return &result, nil
}

func (s *responseService) SaveDraft(userID uint, req dto.SaveResponseRequest) (*dto.ResponseDTO, error) {
	draft, cleaned, err := s.CleanupDuplicateDrafts(userID)
	if err != nil {
		return nil, err
	}
	if cleaned > 0 {
		log.Warn().Uint("userID", userID).Int("cleaned", cleaned).Msg("SaveDraft: removed duplicate drafts")
	}

	if draft != nil {
		draft.Answers = req.Answers
		draft.LastSavedAt = time.Now()
		if req.ResponseID != nil {
			draft.ResponseID = req.ResponseID
		}
		if err := s.responseRepo.Update(draft); err != nil {
			log.Error().Err(err).Uint("draftID", draft.ID).Msg("SaveDraft: failed to update draft")
			return nil, apperror.Store(err)
		}

		drafts, err := s.responseRepo.FindDraftsByUser(userID)
		if err != nil || len(drafts) == 0 {
			// Update already succeeded; fall back to the in-memory copy.
			result := toResponseDTO(draft)
			return &result, nil
		}
		result := toResponseDTO(&drafts[0])
		return &result, nil
	}

	responseID := req.ResponseID
	if responseID == nil {
		minted := fmt.Sprintf("draft_%d_%d", userID, time.Now().UnixMilli())
		responseID = &minted
	}
	newDraft := model.Response{
		UserID:        userID,
		ResponseID:    responseID,
		Status:        model.StatusDraft,
		Answers:       req.Answers,
		SchemaVersion: model.AnswersSchemaVersion,
		LastSavedAt:   time.Now(),
	}
	if err := s.responseRepo.Create(&newDraft); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("SaveDraft: failed to create draft")
		return nil, apperror.Store(err)
	}

	result := toResponseDTO(&newDraft)
	return &result, nil
}

func (s *responseService) GetDraft(userID uint) (*dto.ResponseDTO, error) {
	drafts, err := s.responseRepo.FindDraftsByUser(userID)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if len(drafts) == 0 {
		return nil, apperror.NotFound("no draft found")
	}
	result := toResponseDTO(&drafts[0])
	return &result, nil
}

func (s *responseService) GetAllResponses(userID uint) ([]dto.ResponseDTO, error) {
	responses, err := s.responseRepo.FindSubmittedByUser(userID)
	if err != nil {
		return nil, apperror.Store(err)
	}
	return toResponseDTOs(responses), nil
}

// GetResponseByID scopes reads by role: admins see any response, users see
// only their own. Misses under the applicable scope are reported as not-found
// so the existence of other users' responses never leaks.
func (s *responseService) GetResponseByID(requesterID uint, role string, id uint) (*dto.ResponseDTO, error) {
	var (
		response *model.Response
		err      error
	)
	if role == model.RoleAdmin {
		response, err = s.responseRepo.FindByID(id)
	} else {
		response, err = s.responseRepo.FindByIDAndUser(id, requesterID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("response not found")
		}
		return nil, apperror.Store(err)
	}
	result := toResponseDTO(response)
	return &result, nil
}

// DeleteResponse branches scoping on the explicit role parameter: an admin
// deletes by id alone, a user only within their own responses.
func (s *responseService) DeleteResponse(requesterID uint, role string, id uint) error {
	var (
		rows int64
		err  error
	)
	if role == model.RoleAdmin {
		rows, err = s.responseRepo.DeleteByID(id)
	} else {
		rows, err = s.responseRepo.DeleteByIDAndUser(id, requesterID)
	}
	if err != nil {
		log.Error().Err(err).Uint("id", id).Msg("DeleteResponse: delete failed")
		return apperror.Store(err)
	}
	if rows == 0 {
		return apperror.NotFound("response not found")
	}
	log.Info().Uint("id", id).Uint("requesterID", requesterID).Str("role", role).Msg("Response deleted")
	return nil
}

func (s *responseService) GetAllResponsesAdmin() ([]dto.ResponseDTO, error) {
	responses, err := s.responseRepo.FindAllSubmitted()
	if err != nil {
		return nil, apperror.Store(err)
	}
	return toResponseDTOs(responses), nil
}

func (s *responseService) CleanupDuplicateDrafts(userID uint) (*model.Response, int, error) {
	drafts, err := s.responseRepo.FindDraftsByUser(userID)
	if err != nil {
		return nil, 0, apperror.Store(err)
	}
	if len(drafts) == 0 {
		return nil, 0, nil
	}
	if len(drafts) == 1 {
		return &drafts[0], 0, nil
	}

	// Drafts arrive most recently saved first; keep the head, drop the rest.
	var staleIDs []uint
	for _, stale := range drafts[1:] {
		staleIDs = append(staleIDs, stale.ID)
	}
	if _, err := s.responseRepo.DeleteByIDs(staleIDs); err != nil {
		return nil, 0, apperror.Store(err)
	}
	return &drafts[0], len(staleIDs), nil
}

func (s *responseService) CleanupAllDuplicateDrafts() (*dto.CleanupReportDTO, error) {
	userIDs, err := s.responseRepo.DraftUserIDs()
	if err != nil {
		return nil, apperror.Store(err)
	}

	totalCleaned := 0
	for _, userID := range userIDs {
		_, cleaned, err := s.CleanupDuplicateDrafts(userID)
		if err != nil {
			return nil, err
		}
		totalCleaned += cleaned
	}

	remaining, err := s.responseRepo.CountDrafts()
	if err != nil {
		return nil, apperror.Store(err)
	}

	return &dto.CleanupReportDTO{
		CleanedCount:    totalCleaned,
		RemainingDrafts: int(remaining),
		DraftUsers:      len(userIDs),
	}, nil
}

func (s *responseService) clearDrafts(userID uint) (int, error) {
	drafts, err := s.responseRepo.FindDraftsByUser(userID)
	if err != nil {
		return 0, apperror.Store(err)
	}
	if len(drafts) == 0 {
		return 0, nil
	}
	ids := make([]uint, 0, len(drafts))
	for _, d := range drafts {
		ids = append(ids, d.ID)
	}
	if _, err := s.responseRepo.DeleteByIDs(ids); err != nil {
		return 0, apperror.Store(err)
	}
	return len(ids), nil
}

func toResponseDTO(response *model.Response) dto.ResponseDTO {
	var result dto.ResponseDTO
	if err := copier.Copy(&result, response); err != nil {
		log.Error().Err(err).Msg("Failed to copy Response model to DTO")
	}
	result.Username = response.User.Username
	return result
}

func toResponseDTOs(responses []model.Response) []dto.ResponseDTO {
	results := make([]dto.ResponseDTO, 0, len(responses))
	for i := range responses {
		results = append(results, toResponseDTO(&responses[i]))
	}
	return results
}
