package forms

// DefaultEntries enumerates every submission kind the platform accepts, one
// relational table each. Field names follow the public form payloads; column
// names follow the tables. Adding a kind is a data change here, not new
// handler code.
func DefaultEntries() []*SchemaEntry {
	return []*SchemaEntry{
		{
			Kind:      "freelance",
			Table:     "freelance",
			ReturnsID: true,
			Columns: []ColumnSpec{
				{Name: "title", Field: "title", Required: true, Searchable: true},
				{Name: "seller_name", Field: "sellerName", Required: true},
				{Name: "domain_name", Field: "domainName", Searchable: true},
				{Name: "min_price", Field: "minPrice", Kind: ValueDecimal},
				{Name: "max_price", Field: "maxPrice", Kind: ValueDecimal},
				{Name: "zip_file", File: "zipFile"},
				{Name: "images", File: "images", Multi: true},
				{Name: "project_detail", Field: "projectDetail", Searchable: true},
			},
		},
		{
			Kind:  "selling-project",
			Table: "selling_projects",
			Columns: []ColumnSpec{
				{Name: "name", Field: "Name", Required: true},
				{Name: "project_name", Field: "projectname", Required: true},
				{Name: "mobile_number", Field: "mobileNumber"},
				{Name: "email", Field: "gmail"},
				{Name: "min_price", Field: "minPrice", Kind: ValueDecimal},
				{Name: "max_price", Field: "maxPrice", Kind: ValueDecimal},
				{Name: "message", Field: "message"},
				{Name: "zip_files", File: "zipFiles", Multi: true},
				{Name: "image_files", File: "imageFiles", Multi: true},
			},
		},
		{
			Kind:  "college",
			Table: "college_projects",
			Columns: []ColumnSpec{
				{Name: "collegename", Field: "collegename", Required: true},
				{Name: "projectname", Field: "projectname", Required: true},
				{Name: "number", Field: "number"},
				{Name: "email", Field: "email"},
				{Name: "preference", Field: "preference"},
				{Name: "what", Field: "what"},
			},
		},
		{
			Kind:  "school",
			Table: "school_projects",
			Columns: []ColumnSpec{
				{Name: "schoolname", Field: "schoolname", Required: true},
				{Name: "projectname", Field: "projectname", Required: true},
				{Name: "number", Field: "number"},
				{Name: "email", Field: "email"},
				{Name: "preference", Field: "preference"},
				{Name: "what", Field: "what"},
			},
		},
		{
			Kind:  "office",
			Table: "office_projects",
			Columns: []ColumnSpec{
				{Name: "officename", Field: "officename", Required: true},
				{Name: "projectname", Field: "projectname", Required: true},
				{Name: "number", Field: "number"},
				{Name: "email", Field: "email"},
				{Name: "preference", Field: "preference"},
				{Name: "what", Field: "what"},
			},
		},
		{
			// Field and column names keep the original intake form's
			// spelling, misprints included, for client compatibility.
			Kind:  "hospital",
			Table: "hospital_projects",
			Columns: []ColumnSpec{
				{Name: "hospitelname", Field: "hospitelname", Required: true},
				{Name: "projectname", Field: "projectname", Required: true},
				{Name: "number", Field: "number"},
				{Name: "email", Field: "email"},
				{Name: "preference", Field: "preference"},
				{Name: "whatshoulddo", Field: "whatshoulddo"},
			},
		},
		{
			Kind:  "project",
			Table: "project",
			Columns: []ColumnSpec{
				{Name: "team_name", Field: "teamName", Required: true},
				{Name: "leader_name", Field: "leaderName", Required: true},
				{Name: "projects", Field: "project"},
				{Name: "mobile_number", Field: "mobileNumber"},
				{Name: "gmail", Field: "gmail"},
				{Name: "college", Field: "college"},
				{Name: "project_title", Field: "projectTitle"},
				{Name: "group_or_solo", Field: "groupOrSolo"},
				{Name: "solution_statement", Field: "solutionStatement"},
				{Name: "what_to_do", Field: "whatToDo"},
			},
		},
		{
			Kind:  "paper-work",
			Table: "paper_work",
			Columns: []ColumnSpec{
				{Name: "team_name", Field: "teamName", Required: true},
				{Name: "leader_name", Field: "leaderName", Required: true},
				{Name: "paper_name", Field: "paperName"},
				{Name: "mobile_number", Field: "mobileNumber"},
				{Name: "gmail", Field: "gmail"},
				{Name: "group_or_solo", Field: "groupOrSolo"},
				{Name: "solution_statement", Field: "solutionStatement"},
				{Name: "what_to_do", Field: "whatToDo"},
			},
		},
		{
			Kind:  "hackathon",
			Table: "hackathon",
			Columns: []ColumnSpec{
				{Name: "team_name", Field: "teamName", Required: true},
				{Name: "leader_name", Field: "leaderName", Required: true},
				{Name: "project_title", Field: "projectTitle"},
				{Name: "hackathon_date", Field: "hackathondate"},
				{Name: "hackathon", Field: "hackathon"},
				{Name: "mobile_number", Field: "mobileNumber"},
				{Name: "gmail", Field: "gmail"},
				{Name: "college", Field: "college"},
				{Name: "group_or_solo", Field: "groupOrSolo"},
				{Name: "solution_statement", Field: "solutionStatement"},
				{Name: "what_to_do", Field: "whatToDo"},
			},
		},
		{
			Kind:  "hardware-modification",
			Table: "hardware_modification",
			Columns: []ColumnSpec{
				{Name: "name", Field: "Name", Required: true},
				{Name: "project_title", Field: "projectname"},
				{Name: "mobile_number", Field: "mobileNumber"},
				{Name: "gmail", Field: "gmail"},
				{Name: "preferences", Field: "preference"},
				{Name: "solution_statement", Field: "solutionStatement"},
			},
		},
		{
			Kind:  "software-modification",
			Table: "software_modification",
			Columns: []ColumnSpec{
				{Name: "name", Field: "Name", Required: true},
				{Name: "project_title", Field: "projectname"},
				{Name: "mobile_number", Field: "mobileNumber"},
				{Name: "gmail", Field: "gmail"},
				{Name: "preferences", Field: "preference"},
				{Name: "solution_statement", Field: "solutionStatement"},
			},
		},
		{
			Kind:  "hardware-base",
			Table: "hardware_bases",
			Columns: []ColumnSpec{
				{Name: "name", Field: "Name", Required: true},
				{Name: "project_name", Field: "projectName", Required: true},
				{Name: "gmail", Field: "gmail"},
				{Name: "mobile_number", Field: "mobileNumber"},
				{Name: "choose", Field: "choose"},
				{Name: "components", Field: "components"},
				{Name: "group_or_solo", Field: "groupOrSolo"},
				{Name: "solution_statement", Field: "solutionStatement"},
				{Name: "what_to_do", Field: "whatToDo"},
			},
		},
		{
			Kind:        "contact",
			Table:       "contact_submissions",
			NotifyEmail: true,
			Columns: []ColumnSpec{
				{Name: "name", Field: "name", Required: true},
				{Name: "email", Field: "email", Required: true},
				{Name: "subject", Field: "subject"},
				{Name: "message", Field: "message", Required: true},
			},
		},
		{
			Kind:  "company-project",
			Table: "company_projects",
			Columns: []ColumnSpec{
				{Name: "company_name", Field: "companyName", Required: true},
				{Name: "mail_id", Field: "mailId", Required: true},
				{Name: "mobile_number", Field: "mobileNumber"},
				{Name: "project_detail", Field: "projectDetail"},
				{Name: "what_to_do", Field: "what"},
				{Name: "select_value2", Field: "selectValue"},
				{Name: "team_details", Field: "teamdetials"},
				{Name: "how_many_member", Field: "howManyMember", Kind: ValueInt},
				{Name: "start_date", Field: "startDate"},
				{Name: "end_date", Field: "endDate"},
				{Name: "meeting_arrangement", Field: "meetingArrangement"},
				{Name: "preferences", Field: "preference"},
				{Name: "what_time", Field: "whatTime"},
				{Name: "message", Field: "message"},
				{Name: "frontend", Field: "frontend"},
				{Name: "backend", Field: "backend"},
				{Name: "fullstack", Field: "fullstack"},
				{Name: "machinelearning", Field: "machinelearning"},
				{Name: "other", Field: "other"},
			},
		},
	}
}
