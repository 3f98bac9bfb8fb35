// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package app_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/volant-app/volant/internal/app"
	"github.com/volant-app/volant/internal/command"
	"github.com/volant-app/volant/internal/command/handlers"
	"github.com/volant-app/volant/internal/model"
	"github.com/volant-app/volant/internal/parse"
)

var _ = Describe("Session", func() {
	var (
		ctx     context.Context
		session *app.Session
	)

	handle := func(line string) app.Reply {
		GinkgoHelper()
		reply, err := session.Handle(ctx, line)
		Expect(err).NotTo(HaveOccurred())
		return reply
	}

	BeforeEach(func() {
		ctx = context.Background()
		var err error
		session, err = app.NewSession()
		Expect(err).NotTo(HaveOccurred())
	})

	It("starts on the home page with no trips", func() {
		Expect(session.Page()).To(Equal(command.PageHome))
		Expect(session.Trip()).To(BeNil())
		Expect(session.Depth()).To(Equal(1))
		Expect(session.Trips().Len()).To(BeZero())
		Expect(session.Done()).To(BeFalse())
	})

	It("rejects back on the home page without moving", func() {
		_, err := session.Handle(ctx, "back")
		Expect(err).To(HaveOccurred())
		Expect(command.UserMessage(err)).To(Equal(handlers.MessageAlreadyHome))
		Expect(session.Page()).To(Equal(command.PageHome))
	})

	Context("with a trip", func() {
		BeforeEach(func() {
			handle("add n/Japan l/Tokyo d/2024-03-01 to 2024-03-09 t/food")
		})

		It("opens the itinerary with goto and returns with back", func() {
			reply := handle("goto 1")
			Expect(reply.Page).To(Equal(command.PageItinerary))
			Expect(session.Trip().Name).To(Equal(model.Name("Japan")))
			Expect(session.Depth()).To(Equal(2))

			reply = handle("back")
			Expect(reply.Page).To(Equal(command.PageHome))
			Expect(session.Trip()).To(BeNil())
		})

		It("toggles between itinerary and journal without growing the stack", func() {
			handle("goto 1")
			handle("journal")
			Expect(session.Page()).To(Equal(command.PageJournal))
			Expect(session.Depth()).To(Equal(3))

			handle("itinerary")
			Expect(session.Page()).To(Equal(command.PageItinerary))
			Expect(session.Depth()).To(Equal(2))

			handle("journal")
			handle("back")
			Expect(session.Page()).To(Equal(command.PageItinerary))
		})

		It("scopes words to the active page", func() {
			_, err := session.Handle(ctx, "journal")
			Expect(err).To(HaveOccurred())
			Expect(command.UserMessage(err)).To(Equal(command.MessageUnknownCommand))

			handle("goto 1")
			_, err = session.Handle(ctx, "goto 1")
			Expect(command.UserMessage(err)).To(Equal(command.MessageUnknownCommand))
		})

		It("executes page commands against the open trip", func() {
			handle("goto 1")
			handle("add n/Temple l/Asakusa d/2024-03-02 t/09:30")
			handle("journal")
			handle("add d/2024-03-02 t/21:00 c/Lovely day. f/happy")

			trip := session.Trips().Items()[0]
			Expect(trip.Itinerary.Len()).To(Equal(1))
			Expect(trip.Journal.Len()).To(Equal(1))
		})

		It("keeps the page when a line is rejected", func() {
			handle("goto 1")
			_, err := session.Handle(ctx, "delete 0")
			Expect(err).To(HaveOccurred())
			Expect(parse.IsInvalidFormat(err)).To(BeTrue())
			Expect(session.Page()).To(Equal(command.PageItinerary))

			_, err = session.Handle(ctx, "   ")
			Expect(command.UserMessage(err)).To(ContainSubstring(command.HelpUsage))
		})
	})

	It("finishes on exit from any page", func() {
		reply := handle("exit")
		Expect(reply.Done).To(BeTrue())
		Expect(reply.Feedback).To(Equal(handlers.MessageGoodbye))
		Expect(session.Done()).To(BeTrue())

		reply = handle("list")
		Expect(reply.Done).To(BeTrue())
	})

	It("uses the trips it was given", func() {
		trips := model.NewTripList()
		Expect(model.AddTrip(trips, model.NewTrip(
			model.MustName("Peru"), model.MustLocation("Cusco"),
			model.MustDateRange("2025-06-01 to 2025-06-20"), nil))).To(Succeed())

		var err error
		session, err = app.NewSession(app.WithTrips(trips))
		Expect(err).NotTo(HaveOccurred())

		reply := handle("list")
		Expect(reply.Feedback).To(ContainSubstring("1. Peru (Cusco)"))
	})
})
