package mockapi

import (
	"time"

	"github.com/google/uuid"
	"github.com/leetcoach/client/domain"
)

// Fixture problem ids are stable so that links survive restarts.
var (
	TwoSumID         = uuid.MustParse("7f1d3c55-2a4e-4b8e-9a51-0c6a1f0b2d11").String()
	ReverseListID    = uuid.MustParse("1c9b6e02-5d7a-4f3e-8b2c-3e4f5a6b7c22").String()
	ValidBracketsID  = uuid.MustParse("a4e8f0d3-6b1c-4d2e-9f3a-5b6c7d8e9f33").String()
	fixtureCreatedAt = time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)
)

func SampleProblems() []domain.Problem {
	return []domain.Problem{
		{
			ID:           TwoSumID,
			Category:     "Arrays & Strings",
			TemplateSlug: "two_sum",
			Seed:         42,
			Difficulty:   domain.DifficultyEasy,
			Title:        "Two Sum",
			Prompt:       "Given an array of integers nums and an integer target, return indices of the two numbers such that they add up to target.",
			StarterCode: map[domain.Language]string{
				domain.LangPython: "def two_sum(nums, target):\n    # Your code here\n    pass",
				domain.LangCpp:    "class Solution {\npublic:\n    vector<int> twoSum(vector<int>& nums, int target) {\n        // Your code here\n    }\n};",
			},
			TestsPublicCount: 3,
			CreatedAt:        fixtureCreatedAt,
		},
		{
			ID:           ReverseListID,
			Category:     "Linked List",
			TemplateSlug: "reverse_list",
			Seed:         7,
			Difficulty:   domain.DifficultyEasy,
			Title:        "Reverse Linked List",
			Prompt:       "Given the head of a singly linked list, reverse the list, and return the reversed list.",
			StarterCode: map[domain.Language]string{
				domain.LangPython: "def reverse_list(head):\n    # Your code here\n    pass",
				domain.LangCpp:    "class Solution {\npublic:\n    ListNode* reverseList(ListNode* head) {\n        // Your code here\n    }\n};",
			},
			TestsPublicCount: 3,
			CreatedAt:        fixtureCreatedAt,
		},
		{
			ID:           ValidBracketsID,
			Category:     "Stack & Queue",
			TemplateSlug: "valid_parentheses",
			Seed:         3,
			Difficulty:   domain.DifficultyEasy,
			Title:        "Valid Parentheses",
			Prompt:       "Given a string s containing just the characters '(', ')', '{', '}', '[' and ']', determine if the input string is valid.",
			StarterCode: map[domain.Language]string{
				domain.LangPython: "def is_valid(s):\n    # Your code here\n    pass",
				domain.LangCpp:    "class Solution {\npublic:\n    bool isValid(string s) {\n        // Your code here\n    }\n};",
			},
			TestsPublicCount: 3,
			CreatedAt:        fixtureCreatedAt,
		},
	}
}

func SampleSolutions() map[string]domain.Solution {
	return map[string]domain.Solution{
		TwoSumID: {
			PythonSolution: "def two_sum(nums, target):\n    seen = {}\n    for i, n in enumerate(nums):\n        if target - n in seen:\n            return [seen[target - n], i]\n        seen[n] = i\n    return []",
			CppSolution:    "class Solution {\npublic:\n    vector<int> twoSum(vector<int>& nums, int target) {\n        unordered_map<int, int> seen;\n        for (int i = 0; i < nums.size(); i++) {\n            auto it = seen.find(target - nums[i]);\n            if (it != seen.end()) return {it->second, i};\n            seen[nums[i]] = i;\n        }\n        return {};\n    }\n};",
			Explanation:    "Remember every value's index in a hash map and look up the complement as you go.",
			Complexity:     "O(n) time, O(n) space",
		},
		ReverseListID: {
			PythonSolution: "def reverse_list(head):\n    prev = None\n    while head:\n        head.next, prev, head = prev, head, head.next\n    return prev",
			CppSolution:    "class Solution {\npublic:\n    ListNode* reverseList(ListNode* head) {\n        ListNode* prev = nullptr;\n        while (head) {\n            ListNode* next = head->next;\n            head->next = prev;\n            prev = head;\n            head = next;\n        }\n        return prev;\n    }\n};",
			Explanation:    "Walk the list once, pointing each node back at its predecessor.",
			Complexity:     "O(n) time, O(1) space",
		},
		ValidBracketsID: {
			PythonSolution: "def is_valid(s):\n    pairs = {')': '(', ']': '[', '}': '{'}\n    stack = []\n    for c in s:\n        if c in pairs:\n            if not stack or stack.pop() != pairs[c]:\n                return False\n        else:\n            stack.append(c)\n    return not stack",
			CppSolution:    "class Solution {\npublic:\n    bool isValid(string s) {\n        stack<char> st;\n        for (char c : s) {\n            if (c == '(' || c == '[' || c == '{') { st.push(c); continue; }\n            if (st.empty()) return false;\n            char o = st.top(); st.pop();\n            if ((c == ')' && o != '(') || (c == ']' && o != '[') || (c == '}' && o != '{')) return false;\n        }\n        return st.empty();\n    }\n};",
			Explanation:    "Push openers on a stack and pop on every closer, checking that the pair matches.",
			Complexity:     "O(n) time, O(n) space",
		},
	}
}
