package entity

// Every status mutation path consults these tables; there is no way to move
// a record between labels that a table does not list.

var submissionTransitions = map[SubmissionStatus][]SubmissionStatus{
	SubmissionStatusReceived:    {SubmissionStatusInReview},
	SubmissionStatusInReview:    {SubmissionStatusSelected, SubmissionStatusNotSelected},
	SubmissionStatusSelected:    {},
	SubmissionStatusNotSelected: {SubmissionStatusInReview},
}

var payoutTransitions = map[PayoutStatus][]PayoutStatus{
	PayoutStatusNotApplicable: {PayoutStatusPending},
	PayoutStatusPending:       {PayoutStatusPaid},
	PayoutStatusPaid:          {},
}

var influencerTransitions = map[InfluencerStatus][]InfluencerStatus{
	InfluencerStatusPending:   {InfluencerStatusApproved, InfluencerStatusRejected},
	InfluencerStatusApproved:  {InfluencerStatusSuspended},
	InfluencerStatusSuspended: {InfluencerStatusApproved},
	InfluencerStatusRejected:  {},
}

var briefTransitions = map[BriefStatus][]BriefStatus{
	BriefStatusDraft:     {BriefStatusPublished, BriefStatusArchived},
	BriefStatusPublished: {BriefStatusArchived},
	BriefStatusArchived:  {},
}

func (s SubmissionStatus) Valid() bool {
	_, ok := submissionTransitions[s]
	return ok
}

func (s SubmissionStatus) CanTransitionTo(next SubmissionStatus) bool {
	return contains(submissionTransitions[s], next)
}

func (p PayoutStatus) Valid() bool {
	_, ok := payoutTransitions[p]
	return ok
}

func (p PayoutStatus) CanTransitionTo(next PayoutStatus) bool {
	return contains(payoutTransitions[p], next)
}

func (s InfluencerStatus) Valid() bool {
	_, ok := influencerTransitions[s]
	return ok
}

func (s InfluencerStatus) CanTransitionTo(next InfluencerStatus) bool {
	return contains(influencerTransitions[s], next)
}

func (s BriefStatus) Valid() bool {
	_, ok := briefTransitions[s]
	return ok
}

func (s BriefStatus) CanTransitionTo(next BriefStatus) bool {
	return contains(briefTransitions[s], next)
}

func contains[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
