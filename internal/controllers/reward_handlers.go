package controllers

import (
	"gritd/internal/models"
	"gritd/internal/providers"
	"net/http"
)

type checkRewardsResponse struct {
	Completed []models.RewardSetting `json:"completed"`
}

func (ac *ApiController) GetRewards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.Rewards())
}

func (ac *ApiController) GetNextReward(w http.ResponseWriter, r *http.Request) {
	next, ok := ac.service.NextReward()
	if !ok {
		writeError(w, http.StatusNotFound, "no open reward")
		return
	}
	writeJSON(w, http.StatusOK, next)
}

// CreateReward rejects a target score that another reward already uses.
func (ac *ApiController) CreateReward(w http.ResponseWriter, r *http.Request) {
	var payload rewardPayload
	if !decodeAndValidate(w, r, &payload) {
		return
	}
	if ac.service.RewardTargetExists(payload.TargetScore) {
		writeValidationError(w, targetTakenError())
		return
	}
	reward := ac.service.AddReward(models.NewReward{
		TargetScore:   payload.TargetScore,
		RewardContent: payload.RewardContent,
	})
	writeJSON(w, http.StatusCreated, reward)
}

func (ac *ApiController) findReward(id string) (models.RewardSetting, bool) {
	for _, reward := range ac.service.Rewards() {
		if reward.ID == id {
			return reward, true
		}
	}
	return models.RewardSetting{}, false
}

func (ac *ApiController) UpdateReward(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	current, ok := ac.findReward(id)
	if !ok {
		writeError(w, http.StatusNotFound, "reward not found")
		return
	}

	var patch rewardPatchPayload
	if err := decodeBody(w, r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request")
		return
	}
	merged := patch.merged(current)
	if errs := merged.validate(); len(errs) > 0 {
		writeValidationError(w, errs)
		return
	}
	if merged.TargetScore != current.TargetScore && ac.service.RewardTargetExists(merged.TargetScore) {
		writeValidationError(w, targetTakenError())
		return
	}

	reward, ok := ac.service.UpdateReward(id, models.RewardPatch{
		TargetScore:   &merged.TargetScore,
		RewardContent: &merged.RewardContent,
	})
	if !ok {
		writeError(w, http.StatusNotFound, "reward not found")
		return
	}
	writeJSON(w, http.StatusOK, reward)
}

func (ac *ApiController) DeleteReward(w http.ResponseWriter, r *http.Request) {
	if !ac.service.DeleteReward(r.PathValue("id")) {
		writeError(w, http.StatusNotFound, "reward not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ac *ApiController) CompleteReward(w http.ResponseWriter, r *http.Request) {
	ac.setRewardCompleted(w, r, true)
}

func (ac *ApiController) UncompleteReward(w http.ResponseWriter, r *http.Request) {
	ac.setRewardCompleted(w, r, false)
}

func (ac *ApiController) setRewardCompleted(w http.ResponseWriter, r *http.Request, completed bool) {
	reward, ok := ac.service.SetRewardCompleted(r.PathValue("id"), completed)
	if !ok {
		writeError(w, http.StatusNotFound, "reward not found")
		return
	}
	writeJSON(w, http.StatusOK, reward)
}

func (ac *ApiController) CheckRewards(w http.ResponseWriter, r *http.Request) {
	completed := ac.service.CheckRewards()
	if len(completed) > 0 {
		ac.logger.Infof(providers.TypePost, "%d reward(s) completed on check", len(completed))
	}
	writeJSON(w, http.StatusOK, checkRewardsResponse{Completed: completed})
}
