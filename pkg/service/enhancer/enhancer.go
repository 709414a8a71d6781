package enhancer

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/hashicorp/go-hclog"
	"net/http"
	"regexp"
	"statusdrafter/pkg/utils"
	"strings"
	"time"
)

const SystemPrompt = `You are a professional corporate editor.
I will give you a JSON object containing status update fields (e.g., taskTitle, taskDesc, blockers, nextSteps).
Your job is to rewrite the content of EACH field to be concise, professional, and action-oriented.
Do NOT change the keys.
Do NOT add conversational filler.
Return ONLY the valid JSON object.`

const (
	MessageFieldsRequired = "Fields object is required"
	MessageEnhanceFailed  = "Failed to enhance text"
)

var (
	jsonFenceOpen  = regexp.MustCompile("^```json\\s*")
	plainFenceOpen = regexp.MustCompile("^```\\s*")
	fenceClose     = regexp.MustCompile("\\s*```$")
)

//go:generate mockery --name EnhancerService --output ./ --inpackage
type EnhancerService interface {
	Enhance(ctx context.Context, fields map[string]interface{}) (map[string]string, *utils.GenericError)
}

type enhancerService struct {
	provider Provider
	timeout  time.Duration
	logger   hclog.Logger
}

func NewEnhancerService(logger hclog.Logger, provider Provider, timeout time.Duration) EnhancerService {
	return &enhancerService{
		provider: provider,
		timeout:  timeout,
		logger:   logger.Named("enhancer-service"),
	}
}

// Enhance asks the provider to rewrite every field. The reply must be a JSON
// object of strings keyed by a subset of the request keys; a key left out
// means the field is unchanged.
func (service *enhancerService) Enhance(ctx context.Context, fields map[string]interface{}) (map[string]string, *utils.GenericError) {
	if fields == nil {
		return nil, utils.HTTPGenericError(http.StatusBadRequest, MessageFieldsRequired)
	}

	payload, err := json.Marshal(fields)
	if err != nil {
		return nil, utils.HTTPGenericError(http.StatusBadRequest, MessageFieldsRequired)
	}

	if service.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, service.timeout)
		defer cancel()
	}

	content, err := service.provider.Complete(ctx, SystemPrompt, string(payload))
	if err != nil {
		service.logger.Error("enhancement request failed", "error", err.Error())
		return nil, utils.HTTPGenericErrorWithDetails(http.StatusInternalServerError, MessageEnhanceFailed, err.Error())
	}

	enhanced, err := ParseReply(content, fields)
	if err != nil {
		service.logger.Error("enhancement reply rejected", "error", err.Error())
		return nil, utils.HTTPGenericErrorWithDetails(http.StatusInternalServerError, MessageEnhanceFailed, err.Error())
	}

	return enhanced, nil
}

// StripCodeFence removes a leading ```json or ``` fence and a trailing ```
func StripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = jsonFenceOpen.ReplaceAllString(content, "")
		content = fenceClose.ReplaceAllString(content, "")
	} else if strings.HasPrefix(content, "```") {
		content = plainFenceOpen.ReplaceAllString(content, "")
		content = fenceClose.ReplaceAllString(content, "")
	}
	return content
}

// ParseReply decodes the provider reply and checks it against the request keys
func ParseReply(content string, requested map[string]interface{}) (map[string]string, error) {
	var reply map[string]interface{}
	if err := json.Unmarshal([]byte(StripCodeFence(content)), &reply); err != nil {
		return nil, fmt.Errorf("reply is not a JSON object: %w", err)
	}
	if reply == nil {
		return nil, fmt.Errorf("reply is not a JSON object")
	}

	enhanced := make(map[string]string, len(reply))
	for key, value := range reply {
		if _, ok := requested[key]; !ok {
			return nil, fmt.Errorf("reply contains unexpected key %q", key)
		}
		text, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("reply value for %q is not a string", key)
		}
		enhanced[key] = text
	}

	return enhanced, nil
}
