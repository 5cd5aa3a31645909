package main

import (
	"context"
	"encoding/json"
	"fmt"

	"exam-admin/cmd/seed/internal/seedmodels"
	"exam-admin/internal/service"

	"go.uber.org/zap"
)

type seeder struct {
	organizations service.OrganizationService
	exams         service.ExamService
	questions     service.QuestionService
	log           *zap.Logger
}

// seedOrganization creates the organization, then its exams, then their questions.
// It stops at the first failure of this organization; rows created before it are kept.
func (s *seeder) seedOrganization(ctx context.Context, so seedmodels.SeedOrganization) error {
	org, err := s.organizations.CreateOrganization(ctx, so.Organization)
	if err != nil {
		return fmt.Errorf("failed to create organization %s: %w", so.Organization["organizationCode"], err)
	}
	s.log.Info("Created organization", zap.String("id", org.ID), zap.String("code", org.OrganizationCode))

	orgID, err := json.Marshal(org.ID)
	if err != nil {
		return err
	}
	for _, se := range so.Exams {
		examBody := withField(se.Exam, "organizationId", orgID)
		exam, err := s.exams.CreateExam(ctx, examBody)
		if err != nil {
			return fmt.Errorf("failed to create exam %s: %w", se.Exam["examCode"], err)
		}
		s.log.Info("Created exam", zap.String("id", exam.ID), zap.String("organization_id", org.ID))

		examID, err := json.Marshal(exam.ID)
		if err != nil {
			return err
		}
		for i, sq := range se.Questions {
			body := withField(withField(sq, "organizationId", orgID), "examId", examID)
			question, err := s.questions.CreateQuestion(ctx, body)
			if err != nil {
				return fmt.Errorf("failed to create question %d of exam %s: %w", i, exam.ID, err)
			}
			s.log.Debug("Created question", zap.String("id", question.ID), zap.String("exam_id", exam.ID))
		}
		s.log.Info("Seeded exam questions", zap.String("exam_id", exam.ID), zap.Int("questions", len(se.Questions)))
	}
	return nil
}

// withField returns a copy of body with key set to value.
func withField(body map[string]json.RawMessage, key string, value json.RawMessage) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(body)+1)
	for k, v := range body {
		out[k] = v
	}
	out[key] = value
	return out
}
