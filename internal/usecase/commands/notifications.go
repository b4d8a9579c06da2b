package commands

import (
	"fmt"
	"html"

	"purchase-approval/internal/domain/identity"
	"purchase-approval/internal/domain/purchase"
)

const (
	TopicRequestCreated  = "purchase_request.created"
	TopicApprovalNeeded  = "purchase_request.approval_needed"
	TopicRequestDecided  = "purchase_request.decided"
	TopicDecisionApplied = "purchase_request.decision_applied"
	TopicLogin           = "session.login"
	TopicLogout          = "session.logout"
)

func createdEmails(pr *purchase.PurchaseRequest, frontendURL string) []Email {
	item := pr.ItemName()
	return []Email{
		{
			Topic:   TopicRequestCreated,
			To:      pr.RequesterEmail(),
			Subject: "Purchase Request Created",
			Text:    fmt.Sprintf("Your request for %s has been created.", item),
		},
		{
			Topic:   TopicApprovalNeeded,
			To:      pr.ApproverEmail(),
			Subject: "Approval Needed",
			Text: fmt.Sprintf("A purchase request for %s (total %s) from %s needs your approval. Review it at %s",
				item, pr.TotalPrice().StringFixed(2), pr.Requester(), frontendURL),
			HTML: fmt.Sprintf(
				`<p>A purchase request for <strong>%s</strong> (total %s) from %s needs your approval.</p>`+
					`<p><a href="%s" style="display:inline-block;padding:10px 16px;background:#2563eb;color:#fff;text-decoration:none;border-radius:4px">Review and Approve</a></p>`,
				html.EscapeString(item), pr.TotalPrice().StringFixed(2), html.EscapeString(pr.Requester()), html.EscapeString(frontendURL)),
		},
	}
}

func decisionEmails(pr *purchase.PurchaseRequest, d purchase.Decision) []Email {
	item := pr.ItemName()
	verb := d.PastTense()
	approverSubject, requesterSubject := "Purchase Request Approved", "Request Approved"
	if d == purchase.DecisionReject {
		approverSubject, requesterSubject = "Purchase Request Rejected", "Request Rejected"
	}
	return []Email{
		{
			Topic:   TopicDecisionApplied,
			To:      pr.ApproverEmail(),
			Subject: approverSubject,
			Text:    fmt.Sprintf("You have %s the request for %s.", verb, item),
		},
		{
			Topic:   TopicRequestDecided,
			To:      pr.RequesterEmail(),
			Subject: requesterSubject,
			Text:    fmt.Sprintf("Your request for %s has been %s.", item, verb),
		},
	}
}

func loginEmail(id identity.Identity) Email {
	return Email{
		Topic:   TopicLogin,
		To:      id.PrimaryEmail(),
		Subject: "Login Successful",
		Text:    "You have successfully logged in.",
	}
}

func logoutEmail(id identity.Identity) Email {
	return Email{
		Topic:   TopicLogout,
		To:      id.PrimaryEmail(),
		Subject: "Log-Out Successful",
		Text:    "You have successfully logged out.",
	}
}
