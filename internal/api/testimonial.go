package api

import (
	"context"

	"resto-be/internal/rpc"
	"resto-be/internal/testimonial"
)

func (res *Resolver) registerTestimonials(r *rpc.Router) {
	svc := res.TestimonialSvc

	rpc.Mutation(r, "createTestimonial", svc.Create)

	rpc.Query(r, "getTestimonials", func(ctx context.Context, _ rpc.Void) ([]*testimonial.Testimonial, error) {
		return svc.List(ctx)
	})

	rpc.Query(r, "getTestimonialsByRating", svc.ListByMinRating)

	rpc.Query(r, "getTestimonialById", svc.GetByID)

	rpc.Mutation(r, "updateTestimonial", svc.Update, res.staff())

	rpc.Mutation(r, "deleteTestimonial", svc.Delete, res.staff())

	rpc.Query(r, "getTestimonialSummary", func(ctx context.Context, _ rpc.Void) (*testimonial.Summary, error) {
		return svc.Summary(ctx)
	})
}
