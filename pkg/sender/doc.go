// Package sender delivers rendered campaign HTML. It is deliberately thin:
// the rendering pipeline produces a complete document, and this package only
// moves it — through Postmark in production or onto disk during development.
//
//	var cfg sender.Config
//	config.MustLoad(&cfg)
//	s, err := sender.NewPostmark(cfg)
//	err = s.Send(ctx, sender.Message{
//	    To:         "subscriber@example.com",
//	    Subject:    "Summer Sale",
//	    HTML:       html,
//	    CampaignID: "cmp_42",
//	})
//
// NewDev writes each send as a timestamped .html plus a .json metadata file,
// which doubles as a preview loop while building campaigns locally.
package sender
