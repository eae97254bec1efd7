package content

var resources = []Resource{
	{
		ID:       "budget-basics",
		Title:    "Budget Basics",
		Summary:  "Learn the fundamentals of creating and sticking to a budget that works for you.",
		Overview: "Master the art of budgeting with proven strategies that actually work.",
		Topics:   []string{"50/30/20 Rule", "Tracking Expenses", "Setting Limits"},
		Details: []string{
			"The 50/30/20 rule: Allocate 50% for needs, 30% for wants, and 20% for savings",
			"Expense tracking methods: Manual, apps, and automatic categorization",
			"Setting realistic spending limits based on your income and lifestyle",
			"Creating emergency buffers and sinking funds",
		},
		Benefits: []string{
			"Take control of your spending",
			"Build savings consistently",
			"Reduce financial stress",
			"Achieve your money goals faster",
		},
	},
	{
		ID:       "saving-strategies",
		Title:    "Saving Strategies",
		Summary:  "Discover effective ways to save money and build an emergency fund.",
		Overview: "Learn proven strategies to save money systematically and build wealth.",
		Topics:   []string{"Emergency Fund", "Automated Savings", "High-Yield Accounts"},
		Details: []string{
			"Emergency fund: 3-6 months of expenses in easily accessible accounts",
			"Automated savings: Set up automatic transfers on payday",
			"High-yield savings accounts and money market options",
			"Saving challenges and gamification techniques",
		},
		Benefits: []string{
			"Build financial security",
			"Reduce reliance on credit",
			"Prepare for unexpected expenses",
			"Increase wealth over time",
		},
	},
	{
		ID:       "investing-101",
		Title:    "Investing 101",
		Summary:  "Get started with investing and learn how to grow your wealth over time.",
		Overview: "Begin your investment journey with fundamentals that create long-term wealth.",
		Topics:   []string{"Stock Market", "Index Funds", "Compound Interest"},
		Details: []string{
			"Stock market basics: How shares work and potential returns",
			"Index funds: Low-cost diversification for beginners",
			"Compound interest: The eighth wonder of the world",
			"Risk tolerance and investment timeline planning",
		},
		Benefits: []string{
			"Beat inflation over time",
			"Build long-term wealth",
			"Multiple income streams",
			"Financial independence",
		},
	},
	{
		ID:       "avoiding-debt",
		Title:    "Avoiding Debt Traps",
		Summary:  "Understand credit cards, loans, and how to avoid falling into debt.",
		Overview: "Protect yourself from debt traps and learn smart borrowing strategies.",
		Topics:   []string{"Credit Scores", "Interest Rates", "Debt Management"},
		Details: []string{
			"Credit scores: How they're calculated and how to improve them",
			"Interest rates: Understanding APR, compounding, and impact on payments",
			"Debt management: Strategies for paying off existing debt",
			"Preventing debt: Smart spending habits and emergency planning",
		},
		Benefits: []string{
			"Improve creditworthiness",
			"Reduce financial stress",
			"Lower interest costs",
			"Better borrowing terms",
		},
	},
	{
		ID:       "smart-shopping",
		Title:    "Smart Shopping",
		Summary:  "Make informed purchasing decisions and avoid impulsive spending.",
		Overview: "Transform your purchasing habits with smart shopping techniques.",
		Topics:   []string{"Needs vs Wants", "Price Comparison", "Delayed Gratification"},
		Details: []string{
			"Needs vs wants: Decision framework for every purchase",
			"Price comparison: Tools and strategies to find the best deals",
			"Delayed gratification: Waiting periods and thinking it through",
			"Bulk buying and seasonal strategies",
		},
		Benefits: []string{
			"Save money on purchases",
			"Reduce buyer's remorse",
			"More thoughtful consumption",
			"Better use of resources",
		},
	},
	{
		ID:       "financial-psychology",
		Title:    "Financial Psychology",
		Summary:  "Understand the emotional aspects of money and overcome spending addictions.",
		Overview: "Master the mental game of money and develop healthy financial habits.",
		Topics:   []string{"Spending Triggers", "Money Mindset", "Habit Formation"},
		Details: []string{
			"Spending triggers: Identifying emotional and environmental causes",
			"Money mindset: Overcoming limiting beliefs about wealth",
			"Habit formation: Creating automatic positive financial behaviors",
			"Mindfulness and financial decision-making",
		},
		Benefits: []string{
			"Control emotional spending",
			"Develop healthy money habits",
			"Reduce financial anxiety",
			"Sustainable financial behavior",
		},
	},
}

var articles = []Article{
	{
		ID:       "youth-savings-high",
		Title:    "Youth Savings Rates Hit 10-Year High",
		Category: "Savings",
		Summary:  "Financial institutions report increased savings activity among young adults, with average balances up 15% compared to last year.",
		Age:      "2 hours ago",
		Trending: "up",
	},
	{
		ID:       "social-media-spending",
		Title:    "New Study: Social Media Fueling Teen Spending",
		Category: "Research",
		Summary:  "Recent research links social media usage to increased impulsive spending among teenagers, highlighting the need for financial education.",
		Age:      "5 hours ago",
		Trending: "up",
	},
	{
		ID:       "loan-forgiveness-updates",
		Title:    "Student Loan Forgiveness Program Updates",
		Category: "Policy",
		Summary:  "New provisions in student loan forgiveness programs could benefit millions of young borrowers starting next quarter.",
		Age:      "1 day ago",
		Trending: "neutral",
	},
	{
		ID:       "crypto-volatility",
		Title:    "Cryptocurrency Volatility: What Young Investors Should Know",
		Category: "Investing",
		Summary:  "Financial experts warn young investors about the risks of cryptocurrency investments amid recent market fluctuations.",
		Age:      "1 day ago",
		Trending: "down",
	},
	{
		ID:       "sustainable-investing",
		Title:    "Gen Z Leading the Charge in Sustainable Investing",
		Category: "Trends",
		Summary:  "Young investors increasingly prioritize environmental and social factors when making investment decisions.",
		Age:      "2 days ago",
		Trending: "up",
	},
	{
		ID:       "mobile-banking-adoption",
		Title:    "Mobile Banking Apps See Record Youth Adoption",
		Category: "Technology",
		Summary:  "Digital banking platforms report 40% increase in users aged 16-24, transforming how young people manage money.",
		Age:      "3 days ago",
		Trending: "up",
	},
}
