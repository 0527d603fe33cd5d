package service

import (
	"context"
	"encoding/json"
	"fmt"

	"studyflow/internal/domain"
	"studyflow/internal/dto"
	"studyflow/internal/genai"
	"studyflow/internal/logger"
	"studyflow/internal/repository"
	"studyflow/internal/repository/models"
	"studyflow/internal/util"

	"go.uber.org/zap"
)

const (
	defaultQuizDifficulty    = "medium"
	defaultQuizQuestionCount = 5
)

// QuizService generates quizzes, grades submissions and produces study
// recommendations from the results.
type QuizService interface {
	GenerateQuiz(ctx context.Context, userID string, req dto.QuizGenerateRequest) (*dto.QuizGenerateResponse, error)
	SubmitQuiz(ctx context.Context, userID string, req dto.QuizSubmitRequest) (*dto.QuizSubmitResponse, error)
	GetRecommendations(ctx context.Context, userID string) ([]dto.StoredRecommendation, error)
}

type quizServiceImpl struct {
	completer genai.Completer
	quizRepo  repository.QuizRepository
	recRepo   repository.RecommendationRepository
}

// NewQuizService creates a new instance of QuizService.
func NewQuizService(completer genai.Completer, quizRepo repository.QuizRepository, recRepo repository.RecommendationRepository) QuizService {
	return &quizServiceImpl{
		completer: completer,
		quizRepo:  quizRepo,
		recRepo:   recRepo,
	}
}

// GenerateQuiz produces and stores a fresh quiz. Storage is required
// here: grading a later submission needs the persisted questions.
func (s *quizServiceImpl) GenerateQuiz(ctx context.Context, userID string, req dto.QuizGenerateRequest) (*dto.QuizGenerateResponse, error) {
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = defaultQuizDifficulty
	}
	count := req.QuestionCount
	if count <= 0 {
		count = defaultQuizQuestionCount
	}

	var generated struct {
		Questions []domain.QuizQuestion `json:"questions"`
	}
	prompt := genai.QuizPrompt(req.Subject, req.Chapter, difficulty, count)
	if err := genai.Generate(ctx, s.completer, prompt, &generated); err != nil {
		return nil, mapGenerationError(err)
	}
	if len(generated.Questions) == 0 {
		return nil, domain.NewExtractionFailedError("", fmt.Errorf("model returned no questions"))
	}

	quiz := &models.Quiz{
		ID:         util.NewULID(),
		ExamID:     util.StringToNullString(req.ExamID),
		UserID:     userID,
		Subject:    req.Subject,
		Chapter:    req.Chapter,
		Difficulty: difficulty,
	}

	questions := make([]models.QuizQuestion, 0, len(generated.Questions))
	for i := range generated.Questions {
		// Model-assigned ids are unreliable; replace them with ULIDs so
		// submissions can reference questions unambiguously.
		generated.Questions[i].ID = util.NewULID()
		q := generated.Questions[i]
		questions = append(questions, models.QuizQuestion{
			ID:               q.ID,
			QuizID:           quiz.ID,
			QuestionText:     q.Question,
			Options:          models.StringSlice(q.Options),
			CorrectAnswer:    q.CorrectAnswer,
			Explanation:      util.StringToNullString(q.Explanation),
			Difficulty:       util.StringToNullString(q.Difficulty),
			ConceptTested:    util.StringToNullString(q.ConceptTested),
			RecommendedStudy: util.StringToNullString(q.RecommendedStudyTopic),
		})
	}

	if err := s.quizRepo.SaveQuiz(ctx, quiz, questions); err != nil {
		return nil, domain.NewInternalError("Failed to store generated quiz", err)
	}

	return &dto.QuizGenerateResponse{
		QuizID:    quiz.ID,
		Questions: generated.Questions,
	}, nil
}

// SubmitQuiz grades the submission against the stored questions and asks
// the model for a study recommendation. Persisting the attempt and the
// recommendation is best effort; grading itself never depends on it.
func (s *quizServiceImpl) SubmitQuiz(ctx context.Context, userID string, req dto.QuizSubmitRequest) (*dto.QuizSubmitResponse, error) {
	quiz, err := s.quizRepo.GetQuizByID(ctx, req.QuizID, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("Quiz %s not found", req.QuizID))
	}

	questions, err := s.quizRepo.GetQuestionsByQuizID(ctx, quiz.ID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load quiz questions", err)
	}
	if len(questions) == 0 {
		return nil, domain.NewNotFoundError(fmt.Sprintf("Quiz %s has no questions", req.QuizID))
	}

	byID := make(map[string]models.QuizQuestion, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	correct := 0
	answers := make([]domain.QuizAnswer, 0, len(req.Answers))
	var weakConcepts []string
	for _, submitted := range req.Answers {
		question, ok := byID[submitted.QuestionID]
		if !ok {
			return nil, domain.NewInvalidInputError(fmt.Sprintf("Question %s does not belong to quiz %s", submitted.QuestionID, quiz.ID))
		}
		isCorrect := submitted.Answer == question.CorrectAnswer
		if isCorrect {
			correct++
		} else if question.ConceptTested.Valid && question.ConceptTested.String != "" {
			weakConcepts = append(weakConcepts, question.ConceptTested.String)
		}
		answers = append(answers, domain.QuizAnswer{
			QuestionID:    submitted.QuestionID,
			UserAnswer:    submitted.Answer,
			IsCorrect:     isCorrect,
			ConceptTested: question.ConceptTested.String,
		})
	}

	total := len(questions)
	score := correct * 100 / total

	var recommendation domain.StudyRecommendation
	prompt := genai.RecommendationPrompt(quiz.Subject, quiz.Chapter, score, correct, total, weakConcepts)
	if err := genai.Generate(ctx, s.completer, prompt, &recommendation); err != nil {
		return nil, mapGenerationError(err)
	}

	s.persistAttempt(ctx, userID, quiz, score, answers)
	s.persistRecommendation(ctx, userID, quiz, recommendation)

	return &dto.QuizSubmitResponse{
		Score:          score,
		CorrectCount:   correct,
		TotalQuestions: total,
		Answers:        answers,
		Recommendation: &recommendation,
	}, nil
}

// GetRecommendations lists the user's persisted study recommendations,
// newest first.
func (s *quizServiceImpl) GetRecommendations(ctx context.Context, userID string) ([]dto.StoredRecommendation, error) {
	rows, err := s.recRepo.GetRecommendationsByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load recommendations", err)
	}

	stored := make([]dto.StoredRecommendation, 0, len(rows))
	for _, row := range rows {
		var rec domain.StudyRecommendation
		if err := json.Unmarshal(row.StudyPlan, &rec); err != nil {
			logger.Get().Warn("Stored recommendation is unreadable, skipping", zap.String("id", row.ID), zap.Error(err))
			continue
		}
		stored = append(stored, dto.StoredRecommendation{
			ID:             row.ID,
			Subject:        row.Subject,
			Chapter:        row.Chapter,
			Recommendation: rec,
			CreatedAt:      row.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return stored, nil
}

func (s *quizServiceImpl) persistAttempt(ctx context.Context, userID string, quiz *models.Quiz, score int, answers []domain.QuizAnswer) {
	attempt := &models.QuizAttempt{
		ID:     util.NewULID(),
		QuizID: quiz.ID,
		UserID: userID,
		Score:  score,
	}
	rows := make([]models.QuizAnswer, 0, len(answers))
	for _, a := range answers {
		rows = append(rows, models.QuizAnswer{
			ID:         util.NewULID(),
			AttemptID:  attempt.ID,
			QuestionID: a.QuestionID,
			UserAnswer: a.UserAnswer,
			IsCorrect:  a.IsCorrect,
		})
	}
	if err := s.quizRepo.SaveAttempt(ctx, attempt, rows); err != nil {
		logger.Get().Warn("Failed to persist quiz attempt", zap.String("quizID", quiz.ID), zap.Error(err))
	}
}

func (s *quizServiceImpl) persistRecommendation(ctx context.Context, userID string, quiz *models.Quiz, rec domain.StudyRecommendation) {
	appLogger := logger.Get()
	recJSON, err := json.Marshal(rec)
	if err != nil {
		appLogger.Warn("Failed to encode recommendation for storage", zap.String("quizID", quiz.ID), zap.Error(err))
		return
	}
	row := &models.StudyRecommendation{
		ID:        util.NewULID(),
		UserID:    userID,
		ExamID:    quiz.ExamID,
		Subject:   quiz.Subject,
		Chapter:   quiz.Chapter,
		WeakAreas: models.StringSlice(rec.WeakAreas),
		StudyPlan: models.JSONDocument(recJSON),
	}
	if err := s.recRepo.SaveRecommendation(ctx, row); err != nil {
		appLogger.Warn("Failed to persist study recommendation", zap.String("quizID", quiz.ID), zap.Error(err))
	}
}
