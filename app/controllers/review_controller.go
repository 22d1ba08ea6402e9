package controllers

import (
	"github.com/shashiranjanraj/kashvi-store/app/services"
	"github.com/shashiranjanraj/kashvi-store/pkg/ctx"
	"github.com/shashiranjanraj/kashvi-store/pkg/middleware"
)

// ReviewController handles verified-buyer review submission.
type ReviewController struct {
	service *services.ReviewService
}

func NewReviewController() *ReviewController {
	return &ReviewController{service: services.NewReviewService()}
}

type reviewInput struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required,min=3,max=2000"`
}

// Create stores a review. 403 unless the requester owns a paid order
// containing the gemstone.
func (r *ReviewController) Create(c *ctx.Context) {
	userID, ok := middleware.UserIDFromCtx(c.Context())
	if !ok {
		c.Unauthorized()
		return
	}

	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	// The buyer gate decides first: a non-buyer gets 403 no matter what the
	// body looks like, so the response never leaks validation detail.
	if err := r.service.VerifyBuyer(userID, id); err != nil {
		fail(c, err)
		return
	}

	var in reviewInput
	if !c.BindJSON(&in) {
		return
	}

	review, err := r.service.Create(userID, id, in.Rating, in.Comment)
	if err != nil {
		fail(c, err)
		return
	}
	c.Created(review)
}
