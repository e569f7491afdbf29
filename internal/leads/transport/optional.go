package transport

import (
	"encoding/json"

	"varniya_crm_backend/internal/leads/domain"
)

// Optional types distinguish "field absent from the patch" from "field
// explicitly set to null". Plain pointers cannot express that difference,
// and the update path needs it for true PATCH semantics.

type OptionalString struct {
	Value *string
	Set   bool
}

func (o OptionalString) IsZero() bool {
	return !o.Set
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	o.Value = &raw
	return nil
}

type OptionalInt64 struct {
	Value *int64
	Set   bool
}

func (o OptionalInt64) IsZero() bool {
	return !o.Set
}

func (o *OptionalInt64) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var raw int64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	o.Value = &raw
	return nil
}

type OptionalStatus struct {
	Value *domain.Status
	Set   bool
}

func (o OptionalStatus) IsZero() bool {
	return !o.Set
}

func (o *OptionalStatus) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var raw domain.Status
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	o.Value = &raw
	return nil
}

type OptionalFollowUpStatus struct {
	Value *domain.FollowUpStatus
	Set   bool
}

func (o OptionalFollowUpStatus) IsZero() bool {
	return !o.Set
}

func (o *OptionalFollowUpStatus) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var raw domain.FollowUpStatus
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	o.Value = &raw
	return nil
}

type OptionalUrgency struct {
	Value *domain.Urgency
	Set   bool
}

func (o OptionalUrgency) IsZero() bool {
	return !o.Set
}

func (o *OptionalUrgency) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var raw domain.Urgency
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	o.Value = &raw
	return nil
}
