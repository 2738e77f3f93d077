package v1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Arx-Game/arxii-sub002/internal/entities/chargen"
	"github.com/Arx-Game/arxii-sub002/internal/errors"
	v1 "github.com/Arx-Game/arxii-sub002/internal/handlers/api/v1"
	chargensvc "github.com/Arx-Game/arxii-sub002/internal/services/chargen"
	chargenmock "github.com/Arx-Game/arxii-sub002/internal/services/chargen/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *chargenmock.MockService
	router      *gin.Engine
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.ctrl = gomock.NewController(s.T())
	s.mockService = chargenmock.NewMockService(s.ctrl)

	handler, err := v1.NewHandler(&v1.HandlerConfig{
		CharGenService: s.mockService,
	})
	s.Require().NoError(err)

	s.router = gin.New()
	handler.RegisterRoutes(s.router.Group("/api/v1"))
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]json.RawMessage {
	var out map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (s *HandlerTestSuite) TestConfigRequiresService() {
	_, err := v1.NewHandler(&v1.HandlerConfig{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestCreateDraft() {
	draft := &chargen.CharacterDraft{
		ID:       "draft_1",
		PlayerID: "player_1",
	}

	s.mockService.EXPECT().
		CreateDraft(gomock.Any(), &chargensvc.CreateDraftInput{PlayerID: "player_1"}).
		Return(&chargensvc.CreateDraftOutput{Draft: draft}, nil)

	w := s.request(http.MethodPost, "/api/v1/drafts", gin.H{"player_id": "player_1"})

	s.Equal(http.StatusCreated, w.Code)

	var resp struct {
		Draft *chargen.CharacterDraft `json:"draft"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("draft_1", resp.Draft.ID)
	s.Equal("player_1", resp.Draft.PlayerID)
}

func (s *HandlerTestSuite) TestCreateDraftRequiresPlayerID() {
	w := s.request(http.MethodPost, "/api/v1/drafts", gin.H{})

	s.Equal(http.StatusBadRequest, w.Code)

	var body errors.Body
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal(errors.CodeInvalidArgument.String(), body.Code)
}

func (s *HandlerTestSuite) TestGetDraftNotFound() {
	s.mockService.EXPECT().
		GetDraft(gomock.Any(), &chargensvc.GetDraftInput{DraftID: "draft_missing"}).
		Return(nil, errors.NotFoundf("draft %s not found", "draft_missing"))

	w := s.request(http.MethodGet, "/api/v1/drafts/draft_missing", nil)

	s.Equal(http.StatusNotFound, w.Code)

	var body errors.Body
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal(errors.CodeNotFound.String(), body.Code)
}

func (s *HandlerTestSuite) TestGetDraftByPlayer() {
	draft := &chargen.CharacterDraft{ID: "draft_1", PlayerID: "player_1"}

	s.mockService.EXPECT().
		GetDraftByPlayer(gomock.Any(), &chargensvc.GetDraftByPlayerInput{PlayerID: "player_1"}).
		Return(&chargensvc.GetDraftByPlayerOutput{Draft: draft}, nil)

	w := s.request(http.MethodGet, "/api/v1/players/player_1/draft", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(s.decode(w), "draft")
}

func (s *HandlerTestSuite) TestDeleteDraft() {
	s.mockService.EXPECT().
		DeleteDraft(gomock.Any(), &chargensvc.DeleteDraftInput{DraftID: "draft_1"}).
		Return(&chargensvc.DeleteDraftOutput{Message: "draft deleted"}, nil)

	w := s.request(http.MethodDelete, "/api/v1/drafts/draft_1", nil)

	s.Equal(http.StatusOK, w.Code)

	var resp struct {
		Message string `json:"message"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("draft deleted", resp.Message)
}

func (s *HandlerTestSuite) TestEnterStageRedirects() {
	draft := &chargen.CharacterDraft{ID: "draft_1", CurrentStage: chargen.StageOrigin}

	s.mockService.EXPECT().
		EnterStage(gomock.Any(), &chargensvc.EnterStageInput{
			DraftID: "draft_1",
			Stage:   chargen.StageAttributes,
		}).
		Return(&chargensvc.EnterStageOutput{
			Draft:      draft,
			Stage:      chargen.StageOrigin,
			Redirected: true,
		}, nil)

	w := s.request(http.MethodPost, "/api/v1/drafts/draft_1/stage", gin.H{"stage": chargen.StageAttributes})

	s.Equal(http.StatusOK, w.Code)

	var resp struct {
		Stage      string `json:"stage"`
		Redirected bool   `json:"redirected"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(chargen.StageOrigin, resp.Stage)
	s.True(resp.Redirected)
}

func (s *HandlerTestSuite) TestGetStageState() {
	draft := &chargen.CharacterDraft{ID: "draft_1"}

	s.mockService.EXPECT().
		GetStageState(gomock.Any(), &chargensvc.GetStageStateInput{DraftID: "draft_1"}).
		Return(&chargensvc.GetStageStateOutput{
			Draft:               draft,
			NamingRitualVisible: true,
			IsComplete:          false,
			IncompleteStages:    []string{chargen.StageLineage},
		}, nil)

	w := s.request(http.MethodGet, "/api/v1/drafts/draft_1/stages", nil)

	s.Equal(http.StatusOK, w.Code)

	var resp struct {
		NamingRitualVisible bool     `json:"naming_ritual_visible"`
		IsComplete          bool     `json:"is_complete"`
		IncompleteStages    []string `json:"incomplete_stages"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.NamingRitualVisible)
	s.False(resp.IsComplete)
	s.Equal([]string{chargen.StageLineage}, resp.IncompleteStages)
}

func (s *HandlerTestSuite) TestUpdateOrigin() {
	draft := &chargen.CharacterDraft{ID: "draft_1", HomelandID: "hl_arx"}

	s.mockService.EXPECT().
		UpdateOrigin(gomock.Any(), &chargensvc.UpdateOriginInput{
			DraftID:    "draft_1",
			HomelandID: "hl_arx",
		}).
		Return(&chargensvc.UpdateOriginOutput{Draft: draft}, nil)

	w := s.request(http.MethodPut, "/api/v1/drafts/draft_1/origin", gin.H{"homeland_id": "hl_arx"})

	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestUpdateAttributes() {
	draft := &chargen.CharacterDraft{ID: "draft_1"}

	s.mockService.EXPECT().
		UpdateAttributes(gomock.Any(), &chargensvc.UpdateAttributesInput{
			DraftID: "draft_1",
			Stats:   map[string]int32{chargen.StatStrength: 30},
		}).
		Return(&chargensvc.UpdateAttributesOutput{
			Draft:           draft,
			PointsSpent:     20,
			PointsRemaining: 1,
		}, nil)

	w := s.request(http.MethodPut, "/api/v1/drafts/draft_1/attributes", gin.H{
		"stats": gin.H{chargen.StatStrength: 30},
	})

	s.Equal(http.StatusOK, w.Code)

	var resp struct {
		PointsSpent     int32 `json:"points_spent"`
		PointsRemaining int32 `json:"points_remaining"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(int32(20), resp.PointsSpent)
	s.Equal(int32(1), resp.PointsRemaining)
}

func (s *HandlerTestSuite) TestUpdateMagicConvertsNestedInput() {
	draft := &chargen.CharacterDraft{ID: "draft_1"}

	s.mockService.EXPECT().
		UpdateMagic(gomock.Any(), &chargensvc.UpdateMagicInput{
			DraftID: "draft_1",
			Gifts: []chargensvc.GiftInput{
				{
					Name:         "Emberweave",
					ResonanceIDs: []string{"res_flame"},
					Techniques: []chargensvc.TechniqueInput{
						{
							Name:           "Ember Bolt",
							StyleID:        "style_evocation",
							EffectTypeID:   "et_blast",
							RestrictionIDs: []string{"rest_touch"},
							Level:          3,
						},
					},
				},
			},
			AnimaRituals: []chargensvc.AnimaRitualInput{
				{
					StatName:    chargen.StatComposure,
					SkillID:     "skill_meditation",
					ResonanceID: "res_flame",
				},
			},
		}).
		Return(&chargensvc.UpdateMagicOutput{Draft: draft}, nil)

	w := s.request(http.MethodPut, "/api/v1/drafts/draft_1/magic", gin.H{
		"gifts": []gin.H{
			{
				"name":          "Emberweave",
				"resonance_ids": []string{"res_flame"},
				"techniques": []gin.H{
					{
						"name":            "Ember Bolt",
						"style_id":        "style_evocation",
						"effect_type_id":  "et_blast",
						"restriction_ids": []string{"rest_touch"},
						"level":           3,
					},
				},
			},
		},
		"anima_rituals": []gin.H{
			{
				"stat_name":    chargen.StatComposure,
				"skill_id":     "skill_meditation",
				"resonance_id": "res_flame",
			},
		},
	})

	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestDrawTarot() {
	draft := &chargen.CharacterDraft{ID: "draft_1", Identity: chargen.IdentityInfo{Surname: "Ruinward"}}
	card := &chargen.TarotCard{ID: "tarot_tower", SurnameUpright: "Towerborn", SurnameReversed: "Ruinward"}

	s.mockService.EXPECT().
		DrawTarot(gomock.Any(), &chargensvc.DrawTarotInput{DraftID: "draft_1"}).
		Return(&chargensvc.DrawTarotOutput{
			Draft:    draft,
			Card:     card,
			Reversed: true,
			Surname:  "Ruinward",
		}, nil)

	w := s.request(http.MethodPost, "/api/v1/drafts/draft_1/tarot", nil)

	s.Equal(http.StatusOK, w.Code)

	var resp struct {
		Reversed bool   `json:"reversed"`
		Surname  string `json:"surname"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Reversed)
	s.Equal("Ruinward", resp.Surname)
}

func (s *HandlerTestSuite) TestSubmitIncompleteDraft() {
	s.mockService.EXPECT().
		SubmitDraft(gomock.Any(), &chargensvc.SubmitDraftInput{DraftID: "draft_1"}).
		Return(nil, errors.FailedPrecondition("draft is not complete").
			WithMeta("incomplete_stages", []string{chargen.StageMagic}))

	w := s.request(http.MethodPost, "/api/v1/drafts/draft_1/submit", nil)

	s.Equal(http.StatusPreconditionFailed, w.Code)

	var body errors.Body
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal(errors.CodeFailedPrecondition.String(), body.Code)
	s.Contains(body.Meta, "incomplete_stages")
}

func (s *HandlerTestSuite) TestSubmitDraft() {
	app := &chargen.CharacterApplication{
		ID:       "app_1",
		PlayerID: "player_1",
		Status:   chargen.ApplicationStatusPending,
	}

	s.mockService.EXPECT().
		SubmitDraft(gomock.Any(), &chargensvc.SubmitDraftInput{DraftID: "draft_1"}).
		Return(&chargensvc.SubmitDraftOutput{Application: app}, nil)

	w := s.request(http.MethodPost, "/api/v1/drafts/draft_1/submit", nil)

	s.Equal(http.StatusCreated, w.Code)

	var resp struct {
		Application *chargen.CharacterApplication `json:"application"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("app_1", resp.Application.ID)
	s.Equal(chargen.ApplicationStatusPending, resp.Application.Status)
}

func (s *HandlerTestSuite) TestListApplications() {
	s.mockService.EXPECT().
		ListApplications(gomock.Any(), &chargensvc.ListApplicationsInput{PlayerID: "player_1"}).
		Return(&chargensvc.ListApplicationsOutput{
			Applications: []*chargen.CharacterApplication{
				{ID: "app_1"},
				{ID: "app_2"},
			},
		}, nil)

	w := s.request(http.MethodGet, "/api/v1/players/player_1/applications", nil)

	s.Equal(http.StatusOK, w.Code)

	var resp struct {
		Applications []*chargen.CharacterApplication `json:"applications"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp.Applications, 2)
}
