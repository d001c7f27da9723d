package email

const (
	subjectInquiryNotificationFmt = "New AI Business Inquiry from %s"
	subjectInquiryAutoReplyFmt    = "Thank you for your interest in %s"
)
