package handlers

// HandlerBundle groups every handler the router needs. Assembled once
// in main and passed to routes.RegisterRoutes.
type HandlerBundle struct {
	Scheduling *SchedulingHandler
	Chat       *ChatHandler
	Enquiries  *EnquiryHandler
	Admin      *AdminHandler
	Pages      *PageHandler
}
