package converter

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/evgeniy-krivenko/minds/internal/entity"
)

const (
	fieldID          = "id"
	fieldPublishTime = "publish_time"
	fieldContent     = "content"
)

// Mind is the JSON shape of a mind on the HTTP API.
type Mind struct {
	ID          uint64    `json:"id"`
	PublishTime time.Time `json:"publish_time"`
	Content     string    `json:"content"`
}

type ListMindsResponse struct {
	Minds []Mind `json:"minds"`
}

type CreateMindRequest struct {
	Content *string `json:"content"`
}

func ConvertMindToResponse(m entity.Mind) Mind {
	return Mind{
		ID:          m.ID,
		PublishTime: m.PublishTime,
		Content:     m.Content,
	}
}

func ConvertMindsToResponse(minds []entity.Mind) ListMindsResponse {
	resp := ListMindsResponse{Minds: make([]Mind, 0, len(minds))}
	for _, m := range minds {
		resp.Minds = append(resp.Minds, ConvertMindToResponse(m))
	}

	return resp
}

func ConvertMindToProto(m entity.Mind) *structpb.Struct {
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			fieldID:          structpb.NewNumberValue(float64(m.ID)),
			fieldPublishTime: structpb.NewStringValue(m.PublishTime.Format(time.RFC3339)),
			fieldContent:     structpb.NewStringValue(m.Content),
		},
	}
}

func ConvertMindsToProto(minds []entity.Mind) *structpb.ListValue {
	list := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(minds))}
	for _, m := range minds {
		list.Values = append(list.Values, structpb.NewStructValue(ConvertMindToProto(m)))
	}

	return list
}

func ConvertProtoToMind(s *structpb.Struct) (entity.Mind, error) {
	fields := s.GetFields()

	id, ok := fields[fieldID].GetKind().(*structpb.Value_NumberValue)
	if !ok || id.NumberValue < 1 {
		return entity.Mind{}, fmt.Errorf("%w: field %q", entity.ErrInvalidID, fieldID)
	}

	publishTime, err := time.Parse(time.RFC3339, fields[fieldPublishTime].GetStringValue())
	if err != nil {
		return entity.Mind{}, fmt.Errorf("parse %s: %v", fieldPublishTime, err)
	}

	content, ok := fields[fieldContent].GetKind().(*structpb.Value_StringValue)
	if !ok {
		return entity.Mind{}, fmt.Errorf("%w: field %q", entity.ErrInvalidContent, fieldContent)
	}

	return entity.Mind{
		ID:          uint64(id.NumberValue),
		PublishTime: publishTime.UTC(),
		Content:     content.StringValue,
	}, nil
}

func ConvertProtoToMinds(list *structpb.ListValue) ([]entity.Mind, error) {
	minds := make([]entity.Mind, 0, len(list.GetValues()))
	for i, v := range list.GetValues() {
		m, err := ConvertProtoToMind(v.GetStructValue())
		if err != nil {
			return nil, fmt.Errorf("mind #%d: %w", i, err)
		}
		minds = append(minds, m)
	}

	return minds, nil
}
