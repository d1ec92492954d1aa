package databases

import "github.com/legaldesk/legal-case-api/models"

// Bundled fixture set. Each Seed* function returns a fresh value so callers
// can mutate what they get back without poisoning later seeds.

// SeedUsers returns the default system administrator.
func SeedUsers() []models.User {
	return []models.User{
		{
			ID:        "admin_01",
			Username:  "admin",
			FullName:  "Quản Trị Viên Hệ Thống",
			Role:      models.RoleAdmin,
			AvatarURL: "https://ui-avatars.com/api/?name=Admin&background=4338ca&color=fff",
		},
	}
}

// SeedCases returns the bundled case summaries.
func SeedCases() []models.Case {
	return []models.Case{
		{
			ID:         "CASE_CIVIL_DALAT_146",
			Title:      "Tranh chấp quyền sử dụng đất tại số 12 Phan Bội Châu, Đà Lạt",
			CaseNumber: "146/2022/TLST-DS",
			Court:      "TAND Khu vực 1 - Lâm Đồng",
			Status:     models.StatusPending,
			Type:       models.TypeCivil,
			Date:       "07/11/2025",
		},
		{
			ID:         "CASE_ADMIN_TRUNGNGUYEN",
			Title:      "Vụ án Hành chính: Cty CP Cà phê Trung Nguyên kiện UBND Tỉnh Lâm Đồng",
			CaseNumber: "578/TA-HC",
			Court:      "TAND tỉnh Lâm Đồng",
			Status:     models.StatusPending,
			Type:       models.TypeAdministrative,
			Date:       "18/11/2025",
		},
		{
			ID:         "CASE_ADMIN_VUTHIKHOI",
			Title:      "Khiếu kiện Quyết định hành chính về quản lý đất đai (Bà Vũ Thị Khởi)",
			CaseNumber: "TLST-HC/2025",
			Court:      "TAND Khu vực 1 - Lâm Đồng",
			Status:     models.StatusUpcoming,
			Type:       models.TypeAdministrative,
			Date:       "02/12/2025",
		},
		{
			ID:         "CASE_MADUCPHONG_01",
			Title:      "Vụ án ông Mã Đức Phong kiện về đất đai tại Đức Trọng",
			CaseNumber: "12/2025/TLST-HC",
			Court:      "TAND tỉnh Lâm Đồng",
			Status:     models.StatusPostponed,
			Type:       models.TypeAdministrative,
			Date:       "2025-01-17",
		},
	}
}

// SeedGroups returns the bundled case groups.
func SeedGroups() []models.CaseGroup {
	return []models.CaseGroup{
		{
			ID:         "g1",
			Name:       "Các vụ án tranh chấp đất đai khu vực Hồ Xuân Hương",
			CaseCount:  5,
			Plaintiffs: []string{"Nguyễn Văn A", "Trần Thị B", "..."},
			Type:       models.TypeCivil,
		},
	}
}

// SeedCaseDetails returns the bundled case details, keyed by case id.
func SeedCaseDetails() map[string]models.CaseDetail {
	return map[string]models.CaseDetail{
		"CASE_CIVIL_DALAT_146": {
			Case: models.Case{
				ID:         "CASE_CIVIL_DALAT_146",
				Title:      "Tranh chấp quyền sử dụng đất tại số 12 Phan Bội Châu, Đà Lạt",
				CaseNumber: "146/2022/TLST-DS",
				Court:      "TAND Khu vực 1 - Lâm Đồng",
				Status:     models.StatusPending,
				Type:       models.TypeCivil,
				Date:       "07/11/2025",
			},
			Judge:                "Thẩm phán Hoàng Thị Phương Chi",
			CaseStage:            "Chuẩn bị xét xử",
			NextEventDate:        "Chưa ấn định",
			NextEventDescription: "Đang đợi kết quả thẩm định bổ sung",
			Parties: []models.Party{
				{
					Role: "Nguyên đơn",
					Name: "Ông Phùng Công Minh & Bà Hoàng Thị Nhung",
					Representatives: []models.Representative{
						{Name: "Ông Phùng Công Minh (có mặt)", Type: "Tự bảo vệ"},
						{Name: "Bà Hoàng Thị Nhung (có mặt)", Type: "Tự bảo vệ"},
					},
				},
				{
					Role: "Bị đơn",
					Name: "Ông Nguyễn Xuân Tuyên (Sinh năm 1946)",
					Representatives: []models.Representative{
						{Name: "Bà Lê Thị Kim Loan (SN 1999)", Type: "Ủy quyền (Văn bản 02/04/2024)"},
						{Name: "Luật sư Nguyễn Văn Tỉnh", Type: "Bảo vệ quyền lợi (Cty Luật TNHH Đại Nghĩa)"},
					},
					HasHistory: true,
				},
				{
					Role: "Người có quyền lợi, nghĩa vụ liên quan",
					Name: "Nhiều cá nhân và tổ chức",
					Representatives: []models.Representative{
						{Name: "Bà Nguyễn Thị Thụy", Type: "Cá nhân"},
						{Name: "Bà Nguyễn Thị Hải Tú", Type: "Cá nhân"},
						{Name: "Ông Nguyễn Hữu Toàn (Công an tỉnh Lâm Đồng)", Type: "Đại diện theo ủy quyền"},
						{Name: "Ông Nguyễn Mậu Hà (UBND TP Đà Lạt)", Type: "Đại diện theo pháp luật"},
						{Name: "Ông Trần Quốc Tường (UBND tỉnh Lâm Đồng)", Type: "Đại diện theo ủy quyền"},
					},
				},
			},
			ChallengedActions: []models.ChallengedAction{},
			Timeline: []models.TimelineEvent{
				{
					ID:           "evt_meeting_01",
					Date:         "07/11/2025",
					Time:         "08:30",
					Type:         models.EventDocument,
					Title:        "Phiên họp kiểm tra việc giao nộp, tiếp cận, công khai chứng cứ",
					Summary:      "Thẩm phán Hoàng Thị Phương Chi chủ trì phiên họp. Các đương sự đã trình bày ý kiến. Tòa án công khai thêm các tài liệu chứng cứ mới thu thập được (Bản tự khai, Biên bản làm việc, Bản photo phiếu chi, v.v.).",
					DocNumber:    "Thông báo kết quả phiên họp",
					StatusTag:    "Đã hoàn tất",
					DocumentLink: "#",
				},
				{
					ID:        "evt_thuly",
					Date:      "05/10/2022",
					Type:      models.EventDocument,
					Title:     "Thụ lý vụ án",
					Summary:   "Tòa án nhân dân TP Đà Lạt (nay là KV1) thụ lý vụ án số 146/2022/TLST-DS.",
					DocNumber: "146/2022/TLST-DS",
					StatusTag: "Đã hoàn tất",
				},
			},
			Documents: []models.DocumentRef{
				{Title: "Thông báo kết quả phiên họp", Date: "07/11/2025", Type: "Thông báo"},
				{Title: "Biên bản lấy lời khai", Date: "21/02/2022", Type: "Biên bản"},
				{Title: "Quyết định 455/QĐ-UB (cũ)", Date: "25/09/1989", Type: "Quyết định"},
				{Title: "Văn bản 3152/UB", Date: "19/08/2004", Type: "Công văn"},
			},
		},
		"CASE_ADMIN_TRUNGNGUYEN": {
			Case: models.Case{
				ID:         "CASE_ADMIN_TRUNGNGUYEN",
				Title:      "Vụ án Hành chính: Cty CP Cà phê Trung Nguyên khởi kiện",
				CaseNumber: "578/TA-HC",
				Court:      "TAND tỉnh Lâm Đồng",
				Status:     models.StatusPending,
				Type:       models.TypeAdministrative,
				Date:       "18/11/2025",
			},
			Judge:                "Đang cập nhật",
			CaseStage:            "Chuẩn bị xét xử",
			NextEventDate:        "Đang chờ Tòa ấn định",
			NextEventDescription: "Chờ ý kiến chỉ đạo từ UBND Tỉnh",
			Parties: []models.Party{
				{
					Role:            "Người khởi kiện",
					Name:            "Công ty Cổ phần Cà phê Trung Nguyên",
					Representatives: []models.Representative{},
				},
				{
					Role: "Người bị kiện",
					Name: "Ủy ban nhân dân tỉnh Lâm Đồng",
					Representatives: []models.Representative{
						{Name: "Sở Nông nghiệp và PTNT", Type: "Tham mưu văn bản"},
					},
				},
			},
			ChallengedActions: []models.ChallengedAction{
				{
					Step:      1,
					DocType:   "Giấy chứng nhận QSDĐ",
					DocNumber: "T 418459 & T 418460",
					Issuer:    "UBND tỉnh Lâm Đồng",
					Date:      "24/04/2002",
				},
				{
					Step:      2,
					DocType:   "Văn bản hành chính",
					DocNumber: "5587/UBND-ĐC",
					Issuer:    "UBND tỉnh Lâm Đồng",
					Date:      "25/08/2017",
				},
			},
			Timeline: []models.TimelineEvent{
				{
					ID:           "evt_snnmt",
					Date:         "18/11/2025",
					Type:         models.EventDocument,
					Title:        "Sở NN&PTNT báo cáo ý kiến bổ sung",
					Summary:      "Sở Nông nghiệp và PTNT có văn bản số 6490/SNNMT-PC gửi UBND Tỉnh. Nội dung: Rà soát nguồn gốc đất (chuyển nhượng từ Trà Tiến Đạt II sang Trung Nguyên), quá trình cấp GCNQSDĐ và kiến nghị tham mưu văn bản gửi Tòa án.",
					DocNumber:    "6490/SNNMT-PC",
					StatusTag:    "Đang xử lý",
					DocumentLink: "#",
				},
				{
					ID:        "evt_ubnd_chidao",
					Date:      "28/10/2025",
					Type:      models.EventRequest,
					Title:     "Chỉ đạo của Chủ tịch UBND Tỉnh",
					Summary:   "Công văn số 6070/UBND-NC về việc giao Sở NN&PTNT trình bày ý kiến bổ sung vụ án.",
					DocNumber: "6070/UBND-NC",
					StatusTag: "Đã hoàn tất",
				},
				{
					ID:        "evt_toa_yeucau",
					Date:      "22/10/2025",
					Type:      models.EventRequest,
					Title:     "Tòa án yêu cầu cung cấp ý kiến",
					Summary:   "TAND tỉnh Lâm Đồng ban hành công văn yêu cầu UBND tỉnh có ý kiến bổ sung đối với vụ án.",
					DocNumber: "578/TA-HC",
					StatusTag: "Đã hoàn tất",
				},
			},
			Documents: []models.DocumentRef{
				{Title: "Báo cáo 6490/SNNMT-PC", Date: "18/11/2025", Type: "Báo cáo"},
				{Title: "Dự thảo văn bản gửi Tòa án", Date: "18/11/2025", Type: "Dự thảo"},
				{Title: "Hợp đồng chuyển nhượng 95/CN", Date: "14/05/2002", Type: "Hợp đồng"},
			},
		},
		"CASE_ADMIN_VUTHIKHOI": {
			Case: models.Case{
				ID:         "CASE_ADMIN_VUTHIKHOI",
				Title:      "Khiếu kiện Quyết định hành chính trong quản lý Nhà nước về đất đai (Bà Vũ Thị Khởi)",
				CaseNumber: "TLST-HC/2025",
				Court:      "TAND Khu vực 1 - Lâm Đồng",
				Status:     models.StatusUpcoming,
				Type:       models.TypeAdministrative,
				Date:       "02/12/2025",
			},
			Judge:                "Đang cập nhật",
			CaseStage:            "Sơ thẩm",
			NextEventDate:        "Đang cập nhật",
			NextEventDescription: "Tham gia tố tụng theo ủy quyền",
			Parties: []models.Party{
				{
					Role:            "Người khởi kiện",
					Name:            "Bà Vũ Thị Khởi",
					Representatives: []models.Representative{},
				},
				{
					Role: "Người bị kiện (Bên ủy quyền)",
					Name: "Ông Hồ Văn Mười - Chủ tịch UBND Tỉnh Lâm Đồng",
					Representatives: []models.Representative{
						{Name: "Ông Lê Trọng Yên - PCT UBND Tỉnh", Type: "Được ủy quyền (thay mặt tham gia tố tụng)"},
					},
				},
			},
			ChallengedActions: []models.ChallengedAction{},
			Timeline: []models.TimelineEvent{
				{
					ID:           "evt_uyquyen",
					Date:         "02/12/2025",
					Type:         models.EventDocument,
					Title:        "Ủy quyền tham gia tố tụng",
					Summary:      "Chủ tịch UBND Tỉnh (Ông Hồ Văn Mười) ủy quyền cho Phó Chủ tịch (Ông Lê Trọng Yên) thay mặt tham gia tố tụng, giải quyết vụ án khiếu kiện của bà Vũ Thị Khởi.",
					DocNumber:    "Giấy Ủy Quyền",
					StatusTag:    "Đã hoàn tất",
					DocumentLink: "#",
				},
			},
			Documents: []models.DocumentRef{
				{Title: "Giấy Ủy Quyền", Date: "02/12/2025", Type: "Văn bản pháp lý"},
			},
		},
		"CASE_MADUCPHONG_01": {
			Case: models.Case{
				ID:         "CASE_MADUCPHONG_01",
				Title:      "Vụ án ông Mã Đức Phong kiện về đất đai tại Đức Trọng",
				CaseNumber: "12/2025/TLST-HC",
				Court:      "TAND tỉnh Lâm Đồng",
				Status:     models.StatusPostponed,
				Type:       models.TypeAdministrative,
				Date:       "2025-01-17",
			},
			Judge:                "Thẩm phán Trần Văn Minh",
			CaseStage:            "Sơ thẩm",
			NextEventDate:        "07/08/2025",
			NextEventDescription: "Phiên tòa sơ thẩm (mở lại)",
			Parties: []models.Party{
				{
					Role: "Nguyên đơn",
					Name: "Ông Mã Đức Phong",
					Representatives: []models.Representative{
						{Name: "Bà Nguyễn Thị Hạnh", Type: "Ủy quyền"},
						{Name: "Luật sư Đỗ Quốc Anh", Type: "Bảo vệ quyền lợi"},
					},
					HasHistory: true,
				},
				{
					Role:            "Bị đơn",
					Name:            "Chủ tịch UBND tỉnh Lâm Đồng",
					Representatives: []models.Representative{},
				},
				{
					Role:            "Bị đơn",
					Name:            "Chủ tịch UBND huyện Đức Trọng",
					Representatives: []models.Representative{},
				},
			},
			ChallengedActions: []models.ChallengedAction{
				{
					Step:      1,
					DocType:   "Văn bản trả lời đơn",
					DocNumber: "1450/UBND-ĐT",
					Issuer:    "UBND huyện Đức Trọng",
					Date:      "25/12/2023",
				},
				{
					Step:      2,
					DocType:   "Quyết định giải quyết khiếu nại (lần đầu)",
					DocNumber: "66/QĐ-UBND-ĐT",
					Issuer:    "Chủ tịch UBND huyện Đức Trọng",
					Date:      "11/06/2024",
				},
				{
					Step:      3,
					DocType:   "Quyết định giải quyết khiếu nại (lần hai)",
					DocNumber: "20/QĐ-UBND",
					Issuer:    "Chủ tịch UBND tỉnh Lâm Đồng",
					Date:      "03/01/2025",
				},
			},
			Timeline: []models.TimelineEvent{
				{
					ID:        "e4",
					Date:      "07/08/2025",
					Time:      "09:00",
					Type:      models.EventTrial,
					Title:     "Xét xử sơ thẩm",
					Summary:   "Lịch xét xử sơ thẩm (mở lại).",
					DocNumber: "245/2025/QĐST-HPT",
					StatusTag: "Sắp diễn ra",
				},
				{
					ID:        "e3",
					Date:      "04/08/2025",
					Type:      models.EventPostponement,
					Title:     "Hoãn phiên tòa",
					Summary:   "Tòa án ra quyết định hoãn phiên tòa sơ thẩm.",
					Reason:    "Vắng mặt người đại diện theo ủy quyền của người bị kiện Chủ tịch UBND tỉnh Lâm Đồng.",
					DocNumber: "245/2025/QĐST-HPT",
					StatusTag: "Đã hoàn tất",
				},
				{
					ID:           "e2",
					Date:         "27/02/2025",
					Time:         "14:00",
					Type:         models.EventOnsite,
					Title:        "Thẩm định tại chỗ",
					Summary:      "Tòa án tiến hành đo đạc, xem xét, thẩm định tại chỗ thửa đất tranh chấp.",
					DocNumber:    "14/QĐ-ĐĐXXTĐTC",
					StatusTag:    "Đã hoàn tất",
					DocumentLink: "#",
				},
				{
					ID:           "e1",
					Date:         "17/01/2025",
					Type:         models.EventDocument,
					Title:        "Thụ lý vụ án",
					Summary:      "Tòa án thụ lý vụ án hành chính.",
					DocNumber:    "12/2025/TLST-HC",
					StatusTag:    "Đã hoàn tất",
					DocumentLink: "#",
				},
			},
			Documents: []models.DocumentRef{
				{Title: "Quyết định đưa vụ án ra xét xử", Date: "01/08/2025", Type: "Quyết định"},
				{Title: "Biên bản thẩm định tại chỗ", Date: "27/02/2025", Type: "Biên bản"},
				{Title: "Thông báo thụ lý vụ án", Date: "17/01/2025", Type: "Thông báo"},
				{Title: "Đơn khởi kiện bổ sung", Date: "10/01/2025", Type: "Đơn từ"},
			},
		},
	}
}
