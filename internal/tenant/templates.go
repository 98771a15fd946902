// internal/tenant/templates.go
package tenant

// Template bodies use the placeholders set by the composer: service,
// firstName, lastName, phone, date, time, passengers, carSeats,
// carSeatCost, carSeatLine, notes, brand, name, email, message.
// carSeatCost and carSeatLine are empty when no car seats were requested.

// exclusiveTenant is the primary brand and the fallback for traffic that
// matches no other tenant. Professional, sleek voice.
func exclusiveTenant() *Tenant {
	return &Tenant{
		Key:       "exclusive",
		BrandName: "Exclusive Town Car Services",
		Hostnames: []string{
			"www.exclusivetowncarservice.com",
			"exclusivetowncarservice.com",
		},
		// Exclusive preview uses default routing, no hints needed.
		PreviewHints: nil,
		Aliases:      []string{"etc"},
		// Legacy deployments configured ADMIN_PHONES / ADMIN_PHONE before
		// the per-tenant key existed; keep probing them.
		AdminKeys: []string{"ADMIN_PHONES_EXCLUSIVE", "ADMIN_PHONES", "ADMIN_PHONE"},
		DriverTemplates: []MessageTemplate{
			{
				Name: "alert-banner",
				Body: "━━━━━━━━━━━━━━━━━━\n" +
					"🚘 RESERVATION ALERT\n" +
					"━━━━━━━━━━━━━━━━━━\n" +
					"Service: {{service}}\n" +
					"Name: {{firstName}} {{lastName}}\n" +
					"Phone: {{phone}}\n" +
					"Date: {{date}}   Time: {{time}}\n" +
					"Passengers: {{passengers}}\n" +
					"Car Seats: {{carSeats}}{{carSeatCost}}\n" +
					"Notes: {{notes}}\n" +
					"━━━━━━━━━━━━━━━━━━\n" +
					"{{brand}}\n",
			},
			{
				Name: "alert-compact",
				Body: "🚘 NEW RESERVATION — {{brand}}\n" +
					"Service: {{service}}\n" +
					"Name: {{firstName}} {{lastName}} ({{phone}})\n" +
					"Date: {{date}}   Time: {{time}}\n" +
					"Passengers: {{passengers}} | Car Seats: {{carSeats}}{{carSeatCost}}\n" +
					"Notes: {{notes}}\n",
			},
		},
		CustomerTemplates: []MessageTemplate{
			{
				Name: "confirm-formal",
				Body: "✅ Dear {{firstName}},\n" +
					"\n" +
					"Your reservation for \"{{service}}\" is confirmed:\n" +
					"📅 {{date}} at {{time}}\n" +
					"{{carSeatLine}}We will contact you shortly for final details.\n" +
					"\n" +
					"Thank you for choosing {{brand}}.\n" +
					"Reply STOP to opt out.",
			},
			{
				Name: "confirm-brief",
				Body: "✅ {{firstName}}, your \"{{service}}\" reservation is confirmed for {{date}} at {{time}}.\n" +
					"{{carSeatLine}}We will reach out shortly with final details.\n" +
					"\n" +
					"— {{brand}}\n" +
					"Reply STOP to opt out.",
			},
		},
		ContactTemplates: []MessageTemplate{
			{
				Name: "inquiry",
				Body: "📨 New Contact Inquiry\n" +
					"Name: {{name}}\n" +
					"Phone: {{phone}}\n" +
					"Email: {{email}}\n" +
					"Service: {{service}}\n" +
					"Message: {{message}}\n" +
					"[{{brand}}]",
			},
		},
	}
}

// allSeasonsTenant serves the All Seasons brand. Friendly, service-focused
// voice. Its site-builder preview is recognized by the /website-4 path cue.
func allSeasonsTenant() *Tenant {
	return &Tenant{
		Key:       "allSeasons",
		BrandName: "All Seasons Town Car Services",
		Hostnames: []string{
			"www.allseasontowncarservice.com",
			"allseasontowncarservice.com",
		},
		PreviewHints: []string{"/website-4"},
		Aliases:      []string{"all-seasons"},
		AdminKeys:    []string{"ADMIN_PHONES_ALLSEASONS"},
		DriverTemplates: []MessageTemplate{
			{
				Name: "ride-request",
				Body: "🚗 New Ride Request!\n" +
					"────────────────────\n" +
					"Service: {{service}}\n" +
					"Client: {{firstName}} {{lastName}}\n" +
					"Phone: {{phone}}\n" +
					"When: {{date}} @ {{time}}\n" +
					"Pax: {{passengers}} | Car Seats: {{carSeats}}{{carSeatCost}}\n" +
					"Notes: {{notes}}\n" +
					"────────────────────\n" +
					"{{brand}} Dispatch\n",
			},
			{
				Name: "ride-request-alt",
				Body: "🔔 Ride Request — {{brand}}\n" +
					"Service: {{service}}\n" +
					"Client: {{firstName}} {{lastName}}\n" +
					"Phone: {{phone}}\n" +
					"When: {{date}} @ {{time}}\n" +
					"Pax: {{passengers}} | Car Seats: {{carSeats}}{{carSeatCost}}\n" +
					"Notes: {{notes}}\n",
			},
		},
		CustomerTemplates: []MessageTemplate{
			{
				Name: "confirm-friendly",
				Body: "Hi {{firstName}}, 👋\n" +
					"\n" +
					"Your {{service}} booking for {{date}} at {{time}} is confirmed.\n" +
					"{{carSeatLine}}We look forward to serving you!\n" +
					"\n" +
					"– {{brand}}\n" +
					"Reply STOP to opt out.",
			},
			{
				Name: "confirm-cheerful",
				Body: "Hi {{firstName}}! 🚗\n" +
					"\n" +
					"You're all set: {{service}} on {{date}} at {{time}}.\n" +
					"{{carSeatLine}}See you then!\n" +
					"\n" +
					"– {{brand}}\n" +
					"Reply STOP to opt out.",
			},
		},
		ContactTemplates: []MessageTemplate{
			{
				Name: "inquiry",
				Body: "📨 New Contact Inquiry\n" +
					"Name: {{name}}\n" +
					"Phone: {{phone}}\n" +
					"Email: {{email}}\n" +
					"Service: {{service}}\n" +
					"Message: {{message}}\n" +
					"[{{brand}}]",
			},
		},
	}
}
